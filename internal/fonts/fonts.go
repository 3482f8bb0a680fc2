package fonts

import (
	"os"
	"path/filepath"
	"strings"
)

// Exts are the extensions considered font files.
var Exts = []string{".ttf", ".otf"}

// BaseDirs returns candidate base directories for fonts (relative to process cwd).
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths and no error.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Resolve turns a configured font into a file path. An existing file path is returned as is;
// anything else is looked up by name under dirs.
func Resolve(search string, dirs ...string) (string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return "", os.ErrNotExist
	}
	if info, err := os.Stat(search); err == nil && !info.IsDir() && isFont(search) {
		return search, nil
	}
	if len(dirs) == 0 {
		dirs = BaseDirs()
	}
	_, full, err := FindFont(strings.TrimSuffix(search, filepath.Ext(search)), dirs...)
	return full, err
}

// FindFont searches dirs for a font file whose path matches search ("Inter", "Google Sans",
// "Inter-Regular"). When several match, one containing "Regular" wins. Returns the path relative
// to its dir and the full path.
func FindFont(search string, dirs ...string) (relPath string, fullPath string, err error) {
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", "", os.ErrNotExist
	}
	var candidates []struct{ rel, full string }
	for _, base := range dirs {
		list, walkErr := ScanDir(base)
		if walkErr != nil || len(list) == 0 {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				candidates = append(candidates, struct{ rel, full string }{rel, filepath.Join(base, rel)})
			}
		}
	}
	if len(candidates) == 0 {
		return "", "", os.ErrNotExist
	}
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.rel), "regular") {
			return c.rel, c.full, nil
		}
	}
	return candidates[0].rel, candidates[0].full, nil
}
