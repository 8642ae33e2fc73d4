package storage

import (
	"bufio"
	"os"
	"strings"
)

// ReadTemplates reads one puzzle template per line from a file. Blank lines
// and lines starting with '#' are skipped; everything else is returned as
// written (the template parser strips padding itself).
func ReadTemplates(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
