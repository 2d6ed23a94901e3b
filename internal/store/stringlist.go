package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSON string-list files under the config dir. On-disk order is user
// intent, so nothing here sorts; dedupe keeps the first occurrence.

// Normalize trims entries and drops blanks and later duplicates.
func Normalize(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// LoadList reads a JSON string array from path.
// A missing file yields an empty list without error.
func LoadList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return Normalize(arr), nil
}

// SaveList writes a JSON string array to path, creating parent dirs.
func SaveList(path string, list []string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(Normalize(list), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// AddItems loads the list at path, appends the new items and saves in one
// write. Returned slices keep the input order.
func AddItems(path string, items []string) (added, existed []string, err error) {
	names, err := LoadList(path)
	if err != nil {
		return nil, nil, err
	}
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if have[item] {
			existed = append(existed, item)
			continue
		}
		have[item] = true
		names = append(names, item)
		added = append(added, item)
	}
	if len(added) == 0 {
		return added, existed, nil
	}
	return added, existed, SaveList(path, names)
}

// RemoveItems loads the list at path, drops the given items and saves in
// one write. Removed keeps stored order, missing keeps input order.
func RemoveItems(path string, items []string) (removed, missing []string, err error) {
	names, err := LoadList(path)
	if err != nil {
		return nil, nil, err
	}
	drop := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			drop[item] = true
		}
	}
	kept := names[:0]
	gone := make(map[string]bool)
	for _, n := range names {
		if drop[n] {
			gone[n] = true
			removed = append(removed, n)
			continue
		}
		kept = append(kept, n)
	}
	seen := make(map[string]bool)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" || seen[item] {
			continue
		}
		seen[item] = true
		if !gone[item] {
			missing = append(missing, item)
		}
	}
	if len(removed) == 0 {
		return removed, missing, nil
	}
	return removed, missing, SaveList(path, kept)
}
