package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvPreferredManager is the environment variable consulted for an explicit
// manager preference. A set value must parse; a typo'd preference is an error
// rather than a silent fall back to auto-detection.
const EnvPreferredManager = "PREFERRED_WORKSPACE_MANAGER"

// Manager identifies a JavaScript workspace manager. The underlying value is
// the lowercase identifier accepted by ParseManager, so a Manager marshals
// cleanly to JSON and YAML.
type Manager string

const (
	Yarn  Manager = "yarn"
	Pnpm  Manager = "pnpm"
	Rush  Manager = "rush"
	Npm   Manager = "npm"
	Lerna Manager = "lerna"
)

// searchOrder lists the managers by marker precedence, highest first. Do not
// reorder: lerna and rush workspaces usually also carry a package-manager
// lockfile in the same directory, so their markers must be tested first.
var searchOrder = []Manager{Lerna, Rush, Yarn, Pnpm, Npm}

// SearchOrder returns the supported managers in marker precedence order,
// highest first. The returned slice is a copy and may be modified freely.
func SearchOrder() []Manager {
	order := make([]Manager, len(searchOrder))
	copy(order, searchOrder)
	return order
}

// String returns the lowercase identifier, e.g. "yarn".
func (m Manager) String() string { return string(m) }

// MarkerFile returns the file name whose presence in a directory marks it as
// a workspace root for m. It returns "" for values outside the known set.
func (m Manager) MarkerFile() string {
	switch m {
	case Yarn:
		return "yarn.lock"
	case Pnpm:
		return "pnpm-workspace.yaml"
	case Rush:
		return "rush.json"
	case Npm:
		return "package-lock.json"
	case Lerna:
		return "lerna.json"
	}
	return ""
}

// ParseError reports a string that names no known workspace manager. Input
// holds the offending value exactly as it was given.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid workspace manager: %q (must be yarn, pnpm, rush, npm, or lerna)", e.Input)
}

// InvalidFileError reports a path whose file name is not a workspace marker.
type InvalidFileError struct {
	Path string
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("not a workspace marker file: %q", e.Path)
}

// ParseManager matches s case-insensitively against the manager identifiers.
func ParseManager(s string) (Manager, error) {
	switch Manager(strings.ToLower(s)) {
	case Yarn:
		return Yarn, nil
	case Pnpm:
		return Pnpm, nil
	case Rush:
		return Rush, nil
	case Npm:
		return Npm, nil
	case Lerna:
		return Lerna, nil
	default:
		return "", &ParseError{Input: s}
	}
}

// ManagerFromPath returns the manager whose marker file path names. Only the
// final path element is examined, so both bare file names and full paths are
// accepted. Matching is exact: marker files are spelled in lowercase.
func ManagerFromPath(path string) (Manager, error) {
	switch filepath.Base(path) {
	case Yarn.MarkerFile():
		return Yarn, nil
	case Pnpm.MarkerFile():
		return Pnpm, nil
	case Rush.MarkerFile():
		return Rush, nil
	case Npm.MarkerFile():
		return Npm, nil
	case Lerna.MarkerFile():
		return Lerna, nil
	default:
		return "", &InvalidFileError{Path: path}
	}
}

// PreferredManager reads EnvPreferredManager. The boolean is false when the
// variable is unset. A set value that does not parse, including the empty
// string, returns a *ParseError.
func PreferredManager() (Manager, bool, error) {
	value, ok := os.LookupEnv(EnvPreferredManager)
	if !ok {
		return "", false, nil
	}
	m, err := ParseManager(value)
	if err != nil {
		return "", false, err
	}
	return m, true, nil
}
