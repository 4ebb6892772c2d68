package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// LoadScript reads a tengo script, preferring a copy on disk under
// prefabs/scripts so edits are picked up without rebuilding.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

//go:embed *.yaml levels/*.yaml
var PrefabsFS embed.FS

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Levels lists the embedded level files, e.g. "levels/slopes.yaml".
func Levels() ([]string, error) {
	entries, err := fs.ReadDir(PrefabsFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("prefabs: list levels: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !isSpecFile(e.Name()) {
			continue
		}
		out = append(out, path.Join("levels", e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

// LevelPath turns a bare level name such as "slopes" into its prefab path.
func LevelPath(name string) string {
	s := cleanPrefabPath(name)
	if !strings.Contains(s, "/") {
		s = path.Join("levels", s)
	}
	if !isSpecFile(s) {
		s += ".yaml"
	}
	return s
}

// WatchDirs returns the on-disk prefab directories that exist.
func WatchDirs() []string {
	var dirs []string
	for _, d := range []string{"", "levels", "scripts"} {
		p := diskPrefabPath(d)
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			dirs = append(dirs, p)
		}
	}
	return dirs
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "prefabs/") {
		return strings.TrimPrefix(s, "prefabs/")
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}

	s := filepath.ToSlash(path)

	if after, ok := strings.CutPrefix(s, "prefabs/scripts/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}

	if after, ok := strings.CutPrefix(s, "scripts/"); ok {
		s = after
	}

	return fmt.Sprintf("scripts/%s", s)
}

func diskPrefabPath(clean string) string {
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
