package input

import (
	"fmt"

	"github.com/lixenwraith/light-cycle/navigation"
)

// ParseBinding builds a Binding from config "direction = key" pairs
// An empty map yields nil so callers can fall back to defaults
func ParseBinding(section string, data map[string]string) (Binding, error) {
	if len(data) == 0 {
		return nil, nil
	}

	b := make(Binding, len(data))
	seen := make(map[navigation.Direction]string, len(data))

	for dirName, keyName := range data {
		dir, err := navigation.ParseDirection(dirName)
		if err != nil {
			return nil, fmt.Errorf("[%s] %w", section, err)
		}
		if dir == navigation.None {
			return nil, fmt.Errorf("[%s] key %q: cannot bind direction none", section, keyName)
		}
		if prev, ok := seen[dir]; ok {
			return nil, fmt.Errorf("[%s] %w: %s (%q and %q)", section, ErrDuplicateTarget, dir, prev, dirName)
		}
		seen[dir] = dirName

		key, err := ParseKey(keyName)
		if err != nil {
			return nil, fmt.Errorf("[%s] %s: %w", section, dirName, err)
		}
		if _, dup := b[key]; dup {
			return nil, fmt.Errorf("[%s] key %q bound to more than one direction", section, keyName)
		}
		b[key] = dir
	}

	return b, nil
}
