package workspace

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reillysiemens/js-workspace/internal/testutil"
)

func TestParseManager(t *testing.T) {
	tests := []struct {
		input string
		want  Manager
		err   bool
	}{
		{"yarn", Yarn, false},
		{"YARN", Yarn, false},
		{"Yarn", Yarn, false},
		{"pnpm", Pnpm, false},
		{"PNPM", Pnpm, false},
		{"rush", Rush, false},
		{"RUSH", Rush, false},
		{"npm", Npm, false},
		{"NPM", Npm, false},
		{"lerna", Lerna, false},
		{"LERNA", Lerna, false},
		{"lolwut", "", true},
		{"LOLWUT", "", true},
		{"yarn ", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseManager(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseManager(%q) error = %v, wantErr %v", tt.input, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ParseManager(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseManager_errorKeepsInput(t *testing.T) {
	_, err := ParseManager("LolWut")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseManager() error = %T, want *ParseError", err)
	}
	if perr.Input != "LolWut" {
		t.Errorf("ParseError.Input = %q, want %q", perr.Input, "LolWut")
	}
}

func TestMarkerFile(t *testing.T) {
	tests := []struct {
		manager Manager
		want    string
	}{
		{Yarn, "yarn.lock"},
		{Pnpm, "pnpm-workspace.yaml"},
		{Rush, "rush.json"},
		{Npm, "package-lock.json"},
		{Lerna, "lerna.json"},
		{Manager("bower"), ""},
	}

	for _, tt := range tests {
		if got := tt.manager.MarkerFile(); got != tt.want {
			t.Errorf("Manager(%q).MarkerFile() = %q, want %q", tt.manager, got, tt.want)
		}
	}
}

func TestManagerFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Manager
		err  bool
	}{
		{"yarn.lock", Yarn, false},
		{"pnpm-workspace.yaml", Pnpm, false},
		{"rush.json", Rush, false},
		{"package-lock.json", Npm, false},
		{"lerna.json", Lerna, false},
		{"/foo/yarn.lock", Yarn, false},
		{"/bar/pnpm-workspace.yaml", Pnpm, false},
		{"/baz/rush.json", Rush, false},
		{"/quux/package-lock.json", Npm, false},
		{"/yolo/lerna.json", Lerna, false},
		{"pkg/nested/yarn.lock", Yarn, false},
		{"invalid", "", true},
		{"/foo/invalid", "", true},
		{"YARN.LOCK", "", true},
		{"yarn.lock.bak", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ManagerFromPath(tt.path)
			if (err != nil) != tt.err {
				t.Errorf("ManagerFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.err)
			}
			if got != tt.want {
				t.Errorf("ManagerFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestManagerFromPath_errorKeepsPath(t *testing.T) {
	_, err := ManagerFromPath("/foo/invalid")

	var ferr *InvalidFileError
	if !errors.As(err, &ferr) {
		t.Fatalf("ManagerFromPath() error = %T, want *InvalidFileError", err)
	}
	if ferr.Path != "/foo/invalid" {
		t.Errorf("InvalidFileError.Path = %q, want %q", ferr.Path, "/foo/invalid")
	}
}

func TestManagerFromPath_roundTrip(t *testing.T) {
	for _, m := range SearchOrder() {
		got, err := ManagerFromPath(filepath.Join("some", "dir", m.MarkerFile()))
		if err != nil {
			t.Fatalf("ManagerFromPath(%q) error: %v", m.MarkerFile(), err)
		}
		if got != m {
			t.Errorf("ManagerFromPath(%q) = %q, want %q", m.MarkerFile(), got, m)
		}
	}
}

func TestSearchOrder(t *testing.T) {
	want := []Manager{Lerna, Rush, Yarn, Pnpm, Npm}
	if diff := cmp.Diff(want, SearchOrder()); diff != "" {
		t.Errorf("SearchOrder() mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchOrder_returnsCopy(t *testing.T) {
	first := SearchOrder()
	first[0] = Npm

	want := []Manager{Lerna, Rush, Yarn, Pnpm, Npm}
	if diff := cmp.Diff(want, SearchOrder()); diff != "" {
		t.Errorf("SearchOrder() changed after caller mutation (-want +got):\n%s", diff)
	}
}

func TestPreferredManager(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		testutil.UnsetEnv(t, EnvPreferredManager)

		m, ok, err := PreferredManager()
		if err != nil {
			t.Fatalf("PreferredManager() error: %v", err)
		}
		if ok {
			t.Errorf("PreferredManager() ok = true with %s unset", EnvPreferredManager)
		}
		if m != "" {
			t.Errorf("PreferredManager() = %q, want empty", m)
		}
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(EnvPreferredManager, "pnpm")

		m, ok, err := PreferredManager()
		if err != nil {
			t.Fatalf("PreferredManager() error: %v", err)
		}
		if !ok {
			t.Fatal("PreferredManager() ok = false with variable set")
		}
		if m != Pnpm {
			t.Errorf("PreferredManager() = %q, want %q", m, Pnpm)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Setenv(EnvPreferredManager, "RUSH")

		m, _, err := PreferredManager()
		if err != nil {
			t.Fatalf("PreferredManager() error: %v", err)
		}
		if m != Rush {
			t.Errorf("PreferredManager() = %q, want %q", m, Rush)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv(EnvPreferredManager, "lolwut")

		_, _, err := PreferredManager()
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("PreferredManager() error = %T, want *ParseError", err)
		}
		if perr.Input != "lolwut" {
			t.Errorf("ParseError.Input = %q, want %q", perr.Input, "lolwut")
		}
	})

	t.Run("set but empty", func(t *testing.T) {
		t.Setenv(EnvPreferredManager, "")

		_, _, err := PreferredManager()
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("PreferredManager() error = %T, want *ParseError", err)
		}
	})
}
