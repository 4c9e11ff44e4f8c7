package extract

import (
	"fmt"
	"os"
)

// plainText reads the whole file as UTF-8.
func plainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	return string(data), nil
}
