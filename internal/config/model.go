package config

import (
	"fmt"
	"sort"
	"strings"
)

// Model is the format-agnostic content of a seed file.
type Model struct {
	// Source is the path the model was loaded from, used in error messages.
	Source string
	// Values holds the text of every parameter found in the file.
	Values map[string]string
}

// Args arranges the model's values into the positional order given by
// params. Every parameter must be present and no other value may be.
func (m *Model) Args(params []string) ([]string, error) {
	args := make([]string, 0, len(params))
	var missing []string
	known := make(map[string]struct{}, len(params))

	for _, name := range params {
		known[name] = struct{}{}
		v, ok := m.Values[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		args = append(args, v)
	}

	var unknown []string
	for name := range m.Values {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing values for %s", m.Source, strings.Join(missing, ", "))
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%s: unknown parameters %s", m.Source, strings.Join(unknown, ", "))
	}
	return args, nil
}
