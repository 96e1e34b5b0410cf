package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound reports that the search reached the filesystem root without
// finding a workspace marker.
var ErrNotFound = errors.New("no workspace root found")

// Root is a resolved workspace root: the manager governing a directory tree
// and the absolute path of the directory holding its marker file.
type Root struct {
	Manager Manager
	Path    string
}

// Resolve locates the workspace root governing start.
//
// When PREFERRED_WORKSPACE_MANAGER names a manager, only that manager's
// marker is searched for. Otherwise each directory from start upward is
// tested against all five markers in precedence order before the search
// ascends, so a root closer to start always wins and precedence only breaks
// ties within a single directory.
func Resolve(start string) (Root, error) {
	m, ok, err := PreferredManager()
	if err != nil {
		return Root{}, err
	}
	if ok {
		return ResolveWith(start, m)
	}

	marker, err := searchUp(start, markerFiles(searchOrder))
	if err != nil {
		return Root{}, err
	}
	m, err = ManagerFromPath(marker)
	if err != nil {
		return Root{}, err
	}
	return Root{Manager: m, Path: filepath.Dir(marker)}, nil
}

// ResolveWith locates the nearest root for a single manager. The environment
// preference is not consulted.
func ResolveWith(start string, m Manager) (Root, error) {
	if m.MarkerFile() == "" {
		return Root{}, &ParseError{Input: string(m)}
	}
	marker, err := searchUp(start, []string{m.MarkerFile()})
	if err != nil {
		return Root{}, err
	}
	return Root{Manager: m, Path: filepath.Dir(marker)}, nil
}

// searchUp walks from start toward the filesystem root and returns the path
// of the first candidate file that exists. Candidates are tested in the given
// order at each level, and a hit ends the level without testing the rest. The
// check is existence-only: fs.ErrNotExist keeps the walk going, anything else
// a stat reports is returned to the caller.
func searchUp(start string, names []string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		for _, name := range names {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("checking %s: %w", candidate, err)
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("searching above %s: %w", start, ErrNotFound)
		}
		dir = parent
	}
}

func markerFiles(managers []Manager) []string {
	names := make([]string, len(managers))
	for i, m := range managers {
		names[i] = m.MarkerFile()
	}
	return names
}
