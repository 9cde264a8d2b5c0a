package collector

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadTriggerFile parses a file of profile URLs, one per line, into trigger
// inputs. Blank lines and lines starting with # are skipped.
func ReadTriggerFile(path string) ([]TriggerInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trigger file: %w", err)
	}
	defer f.Close()

	var inputs []TriggerInput
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		inputs = append(inputs, TriggerInput{URL: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trigger file: %w", err)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("trigger file %s has no urls", path)
	}
	return inputs, nil
}
