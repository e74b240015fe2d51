package iconfont

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"volumelock/common"
)

// FontLocator finds an installed host font by family name.
type FontLocator interface {
	// Locate returns the parsed font whose family matches name, or an
	// error wrapping common.ErrFontUnavailable when no such font is
	// installed.
	Locate(family string) (*sfnt.Font, error)
}

// dirLocator scans font directories on demand and caches parse results
// per family name.
type dirLocator struct {
	mu    sync.Mutex
	dirs  []string
	cache map[string]*sfnt.Font
	miss  map[string]bool
}

// SystemLocator returns a FontLocator over the host's standard font
// directories.
func SystemLocator() FontLocator {
	return NewDirLocator(systemFontDirs()...)
}

// NewDirLocator returns a FontLocator scanning the given directories
// recursively. Missing directories are skipped.
func NewDirLocator(dirs ...string) FontLocator {
	return &dirLocator{
		dirs:  dirs,
		cache: make(map[string]*sfnt.Font),
		miss:  make(map[string]bool),
	}
}

func (l *dirLocator) Locate(family string) (*sfnt.Font, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := strings.ToLower(family)
	if f, ok := l.cache[key]; ok {
		return f, nil
	}
	if l.miss[key] {
		return nil, common.WrapError(common.ErrFontUnavailable, family)
	}

	for _, dir := range l.dirs {
		f := l.scanDir(dir, key)
		if f != nil {
			l.cache[key] = f
			return f, nil
		}
	}

	l.miss[key] = true
	return nil, common.WrapError(common.ErrFontUnavailable, family)
}

// scanDir walks dir looking for a font file whose family name matches
// want (lowercased). Unreadable entries and unparsable fonts are
// skipped.
func (l *dirLocator) scanDir(dir, want string) *sfnt.Font {
	var found *sfnt.Font
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || found != nil {
			return fs.SkipAll
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".ttf" && ext != ".otf" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil
		}
		if fontMatchesFamily(f, want) {
			found = f
			return fs.SkipAll
		}
		return nil
	})
	return found
}

// fontMatchesFamily checks the font's name table entries against the
// lowercased family name.
func fontMatchesFamily(f *sfnt.Font, want string) bool {
	var b sfnt.Buffer
	for _, id := range []sfnt.NameID{
		sfnt.NameIDFamily,
		sfnt.NameIDFull,
		sfnt.NameIDTypographicFamily,
	} {
		name, err := f.Name(&b, id)
		if err != nil {
			continue
		}
		if strings.ToLower(name) == want {
			return true
		}
	}
	return false
}

func systemFontDirs() []string {
	switch runtime.GOOS {
	case "windows":
		var dirs []string
		if windir := os.Getenv("WINDIR"); windir != "" {
			dirs = append(dirs, filepath.Join(windir, "Fonts"))
		}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		home, _ := os.UserHomeDir()
		return []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		}
	default:
		home, _ := os.UserHomeDir()
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, ".fonts"),
		}
	}
}
