package matching

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptionsFromFile reads matching options from a YAML (or JSON) file.
// Keys missing from the file keep their defaults; on error the defaults are
// returned alongside it.
func LoadOptionsFromFile(path string) (Options, error) {
	o := DefaultOptions()
	b, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read matching options file: %w", err)
	}
	parsed := o
	if err := yaml.Unmarshal(b, &parsed); err != nil {
		return o, fmt.Errorf("unmarshal matching options: %w", err)
	}
	if parsed.Tolerance < 0 || parsed.Tolerance > 1 {
		return o, fmt.Errorf("matching tolerance must be within [0, 1], got %v", parsed.Tolerance)
	}
	return parsed, nil
}
