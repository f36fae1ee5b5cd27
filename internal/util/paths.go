package util

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// AppDirs resolves where one application keeps its files for the current
// user. Home and Getenv are fields so tests can point them elsewhere.
type AppDirs struct {
	App    string
	Home   string
	Getenv func(string) string
}

// UserDirs returns the directories of app for the user running the process.
// An unknown home directory falls back to the working directory.
func UserDirs(app string) AppDirs {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return AppDirs{App: app, Home: home, Getenv: os.Getenv}
}

// Data is $XDG_DATA_HOME/<app>, or ~/.local/share/<app>.
func (d AppDirs) Data() string {
	return filepath.Join(d.xdg("XDG_DATA_HOME", filepath.Join(".local", "share")), d.App)
}

// Exports is <documents>/<app>. The documents folder comes from
// $XDG_DOCUMENTS_DIR, then ~/.config/user-dirs.dirs, then ~/Documents.
func (d AppDirs) Exports() string {
	docs := d.env("XDG_DOCUMENTS_DIR")
	if docs == "" {
		docs = d.userDir("XDG_DOCUMENTS_DIR")
	}
	if docs == "" {
		docs = filepath.Join(d.Home, "Documents")
	}
	return filepath.Join(d.expand(docs), d.App)
}

func (d AppDirs) env(key string) string {
	if d.Getenv == nil {
		return ""
	}
	return strings.TrimSpace(d.Getenv(key))
}

func (d AppDirs) xdg(key, fallback string) string {
	if dir := d.env(key); dir != "" {
		return d.expand(dir)
	}
	return filepath.Join(d.Home, fallback)
}

// userDir reads key from the xdg-user-dirs file, whose lines look like
// XDG_DOCUMENTS_DIR="$HOME/Documents".
func (d AppDirs) userDir(key string) string {
	base := d.xdg("XDG_CONFIG_HOME", ".config")
	data, err := os.ReadFile(filepath.Join(base, "user-dirs.dirs"))
	if err != nil {
		return ""
	}
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if ok && strings.TrimSpace(k) == key {
			return strings.Trim(strings.TrimSpace(v), `"`)
		}
	}
	return ""
}

// expand substitutes $HOME and ~ with d.Home and other $VARS from Getenv.
func (d AppDirs) expand(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = d.Home + path[1:]
	}
	return os.Expand(path, func(key string) string {
		if key == "HOME" {
			return d.Home
		}
		return d.env(key)
	})
}
