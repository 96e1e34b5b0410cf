package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Probe records which workspace markers exist in one ancestor directory.
// Found preserves precedence order and is empty for a directory without
// markers.
type Probe struct {
	Dir   string
	Found []Manager
}

// Scan tests start and every ancestor up to the filesystem root for marker
// files and reports the findings, shallowest directory first. Unlike Resolve
// it never stops early and never fails on an empty tree, which makes it
// suitable for explaining why detection resolves the way it does: the first
// probe with a non-empty Found is where Resolve would stop, and Found[0] is
// the manager it would report.
//
// With no managers given, Scan tests all five in precedence order. Passing
// managers restricts the candidates, mirroring a preference-pinned search.
func Scan(start string, managers ...Manager) ([]Probe, error) {
	if len(managers) == 0 {
		managers = searchOrder
	}
	for _, m := range managers {
		if m.MarkerFile() == "" {
			return nil, &ParseError{Input: string(m)}
		}
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory: %w", err)
	}

	var probes []Probe
	for {
		probe := Probe{Dir: dir}
		for _, m := range managers {
			candidate := filepath.Join(dir, m.MarkerFile())
			if _, err := os.Stat(candidate); err == nil {
				probe.Found = append(probe.Found, m)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("checking %s: %w", candidate, err)
			}
		}
		probes = append(probes, probe)

		parent := filepath.Dir(dir)
		if parent == dir {
			return probes, nil
		}
		dir = parent
	}
}

// Candidates returns the nearest root of every manager that has one above
// start, in precedence order. A tree with no roots at all yields an empty
// slice, not an error.
func Candidates(start string) ([]Root, error) {
	var roots []Root
	for _, m := range searchOrder {
		root, err := ResolveWith(start, m)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		roots = append(roots, root)
	}
	return roots, nil
}
