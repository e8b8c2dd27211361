package report

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadNames reads root type names from the first line of a file, separated
// by commas. Blank entries are dropped. An empty file yields no names.
func ReadNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening names file %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading names file %s: %w", path, err)
		}
		return nil, nil
	}

	return ParseNames(scanner.Text()), nil
}

// ParseNames splits a comma-separated list of type names.
func ParseNames(line string) []string {
	var names []string

	for _, part := range strings.Split(line, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}

	return names
}
