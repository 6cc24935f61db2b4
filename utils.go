package blockbench

import (
	"bytes"
	"os"
	"strings"
)

func readInput(path string, kind InputKind) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if kind == InputHex {
		b = bytes.TrimSpace(b)
	}
	return b, nil
}

// splitList splits a comma-separated flag value, dropping blanks
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
