package answers

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads answers from a YAML file. Missing keys stay empty.
// Choice values are normalized, so "Beta" is read as "beta".
func LoadFile(path string) (Answers, error) {
	var a Answers
	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("answers file loading error: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&a); err != nil {
		return Answers{}, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}
	return a.Normalize(), nil
}
