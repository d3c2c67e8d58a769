// Package levels loads TileShift level files.
// This package depends on board but board does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
)

//go:embed data/*.yaml
var embedded embed.FS

// Level is a validated level together with the file it came from.
type Level struct {
	board.LevelState
	FilePath string
}

// Loader handles loading levels from a file tree.
type Loader struct {
	Root string
	fsys fs.FS
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root)}
}

// NewFSLoader creates a loader over an arbitrary file system.
func NewFSLoader(name string, fsys fs.FS) *Loader {
	return &Loader{Root: name, fsys: fsys}
}

// Embedded returns a loader for the built-in campaign.
func Embedded() *Loader {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// data is a literal path inside the binary.
		panic(err)
	}
	return NewFSLoader("embedded", sub)
}

// LoadAll recursively scans and loads all level files.
// Levels are sorted by number, then ID. A single invalid file fails the
// whole load; a campaign with a broken level is not playable.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			return err
		}
		if prev, dup := seen[level.ID]; dup {
			return fmt.Errorf("levels: duplicate id %q in %s and %s", level.ID, prev, p)
		}
		seen[level.ID] = p

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: loading %s: %w", l.Root, err)
	}

	slices.SortFunc(levels, func(a, b Level) int {
		if a.Number != b.Number {
			return a.Number - b.Number
		}
		return strings.Compare(a.ID, b.ID)
	})

	return levels, nil
}

// LoadFile loads a single level file relative to the loader root.
// A file without an id takes its base name.
func (l *Loader) LoadFile(p string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	ls, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	if ls.ID == "" {
		ls.ID = strings.TrimSuffix(path.Base(p), path.Ext(p))
	}

	return Level{LevelState: ls, FilePath: p}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in campaign order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(FormatExtensions(), ext)
}
