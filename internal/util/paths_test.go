package util

import (
	"os"
	"path/filepath"
	"testing"
)

func testDirs(t *testing.T, env map[string]string) AppDirs {
	t.Helper()
	return AppDirs{
		App:    "salestrack",
		Home:   t.TempDir(),
		Getenv: func(key string) string { return env[key] },
	}
}

func TestAppDirsData(t *testing.T) {
	d := testDirs(t, nil)
	if got, want := d.Data(), filepath.Join(d.Home, ".local", "share", "salestrack"); got != want {
		t.Fatalf("Data() = %q, want %q", got, want)
	}

	d = testDirs(t, map[string]string{"XDG_DATA_HOME": " /srv/data "})
	if got := d.Data(); got != filepath.Join("/srv/data", "salestrack") {
		t.Fatalf("Data() = %q", got)
	}
}

func TestAppDirsExports(t *testing.T) {
	t.Run("default documents folder", func(t *testing.T) {
		d := testDirs(t, nil)
		if got, want := d.Exports(), filepath.Join(d.Home, "Documents", "salestrack"); got != want {
			t.Fatalf("Exports() = %q, want %q", got, want)
		}
	})

	t.Run("environment wins", func(t *testing.T) {
		d := testDirs(t, map[string]string{"XDG_DOCUMENTS_DIR": "$HOME/Docs"})
		if got, want := d.Exports(), filepath.Join(d.Home, "Docs", "salestrack"); got != want {
			t.Fatalf("Exports() = %q, want %q", got, want)
		}
	})

	t.Run("user-dirs file", func(t *testing.T) {
		d := testDirs(t, nil)
		cfgDir := filepath.Join(d.Home, ".config")
		if err := os.MkdirAll(cfgDir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		content := "# written by xdg-user-dirs-update\n" +
			"XDG_DESKTOP_DIR=\"$HOME/Desktop\"\n" +
			"XDG_DOCUMENTS_DIR=\"$HOME/Dokumente\"\n"
		if err := os.WriteFile(filepath.Join(cfgDir, "user-dirs.dirs"), []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if got, want := d.Exports(), filepath.Join(d.Home, "Dokumente", "salestrack"); got != want {
			t.Fatalf("Exports() = %q, want %q", got, want)
		}
	})

	t.Run("tilde", func(t *testing.T) {
		d := testDirs(t, map[string]string{"XDG_DOCUMENTS_DIR": "~/papers"})
		if got, want := d.Exports(), filepath.Join(d.Home, "papers", "salestrack"); got != want {
			t.Fatalf("Exports() = %q, want %q", got, want)
		}
	})
}
