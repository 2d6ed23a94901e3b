package manifest

import (
	"errors"
	"fmt"
	"strings"

	"devctl/internal/config"
	"devctl/internal/store"
	"devctl/internal/tools"
)

// The manifest holds the extra tools a user wants provisioned on top of
// the built-in list. It is a plain JSON array of names so it stays easy
// to edit by hand. File handling lives in the store package; this package
// owns naming rules and spec resolution.

var ErrInvalidName = errors.New("invalid tool name")

// Path returns the manifest location on disk.
func Path() (string, error) {
	return config.ManifestPath()
}

// Load reads the manifest. A missing file is an empty manifest.
func Load() ([]string, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return store.LoadList(path)
}

// Save writes the manifest, creating the config directory when needed.
func Save(names []string) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return store.SaveList(path, names)
}

// validate rejects names that cannot be a formula.
func validate(name string) error {
	if name == "" || strings.ContainsAny(name, " \t") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Add appends a tool name, reporting false when it is already present.
func Add(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if err := validate(name); err != nil {
		return false, err
	}
	added, _, err := AddAll([]string{name})
	if err != nil {
		return false, err
	}
	return len(added) > 0, nil
}

// AddAll appends the given names in one write, returning which were added
// and which already existed. Blank entries are skipped; an unusable name
// fails the whole batch before anything is written.
func AddAll(items []string) (added, existed []string, err error) {
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if err := validate(item); err != nil {
			return nil, nil, err
		}
	}
	path, err := Path()
	if err != nil {
		return nil, nil, err
	}
	return store.AddItems(path, items)
}

// Remove drops a tool name, reporting false when it was not present.
func Remove(name string) (bool, error) {
	removed, _, err := RemoveAll([]string{name})
	if err != nil {
		return false, err
	}
	return len(removed) > 0, nil
}

// RemoveAll drops the given names in one write, returning which were
// removed and which were not present.
func RemoveAll(items []string) (removed, missing []string, err error) {
	path, err := Path()
	if err != nil {
		return nil, nil, err
	}
	return store.RemoveItems(path, items)
}

// Resolve maps a name to a tool spec: built-in tools keep their registry
// entry, everything else follows the name-is-formula convention.
func Resolve(name string) tools.ToolSpec {
	if spec, ok := tools.Find(name); ok {
		return spec
	}
	return tools.FromName(name)
}

// Specs resolves every manifest entry into a spec, in stored order.
func Specs(names []string) []tools.ToolSpec {
	out := make([]tools.ToolSpec, 0, len(names))
	for _, n := range names {
		out = append(out, Resolve(n))
	}
	return out
}
