// Package icon resolves a marker glyph for items whose text names an
// existing file. Lookup failure is never an error; the row simply renders
// without a glyph.
package icon

import "os"

// Resolver maps item text to a display glyph.
type Resolver interface {
	Lookup(text string) (rune, bool)
}

// FileResolver classifies item text as a filesystem path using ls -F style
// markers: '/' directory, '@' symlink, '*' executable, '·' regular file.
type FileResolver struct{}

func (FileResolver) Lookup(text string) (rune, bool) {
	if text == "" {
		return 0, false
	}
	info, err := os.Lstat(text)
	if err != nil {
		return 0, false
	}
	mode := info.Mode()
	switch {
	case mode.IsDir():
		return '/', true
	case mode&os.ModeSymlink != 0:
		return '@', true
	case mode.IsRegular() && mode.Perm()&0o111 != 0:
		return '*', true
	case mode.IsRegular():
		return '·', true
	}
	return 0, false
}
