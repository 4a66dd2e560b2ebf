// SPDX-License-Identifier: MIT

package gcol

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Load parses the file at path. Name is the file's base name.
func Load(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	inst, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	inst.Name = filepath.Base(path)

	return inst, nil
}

// LoadDir walks dir recursively and parses every regular file, skipping
// hidden entries. Names are paths relative to dir with forward slashes;
// the result is sorted by Name. The first parse error aborts the walk.
func LoadDir(dir string, opts ...Option) ([]*Instance, error) {
	var out []*Instance
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		inst, err := Load(path, opts...)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		inst.Name = filepath.ToSlash(rel)
		out = append(out, inst)

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(out, func(a, b *Instance) int { return strings.Compare(a.Name, b.Name) })

	return out, nil
}
