// Package catalog indexes webapp plugin manifests found on a filesystem the
// way a host platform does at plugin-registration time.
package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/goliatone/go-appmanifest/pkg/manifest"
)

// Entry is one catalog listing: a validated manifest plus display metadata
// safe to embed in a listing page.
type Entry struct {
	// ID is the plugin directory name holding the manifest; the document
	// itself carries no identifier.
	ID string

	// Source is the manifest path inside the walked filesystem.
	Source string

	Manifest manifest.Manifest

	// Icon is the sanitized meta.icon: inline SVG stripped to a safe subset,
	// icon class names passed through.
	Icon string
}

// Store keeps the manifests discovered by LoadFS. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	entries map[string]Entry
}

// LoadFS walks the provided filesystem and registers every webapp manifest
// file (webapp.json, webapp.yaml, webapp.yml). When fsys is nil or no
// manifests are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{entries: make(map[string]Entry)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isManifestFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", p, err)
		}

		m, err := manifest.Decode(data)
		if err != nil {
			return fmt.Errorf("catalog: %s: %w", p, err)
		}

		id := entryID(p)
		if _, exists := store.entries[id]; exists {
			return fmt.Errorf("catalog: duplicate plugin id %q (file %s)", id, p)
		}

		store.entries[id] = Entry{
			ID:       id,
			Source:   p,
			Manifest: m,
			Icon:     SanitizeIcon(m.Meta.Icon),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Entry returns the listing with the supplied plugin id.
func (s *Store) Entry(id string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	e, ok := s.entries[id]
	return e, ok
}

// Entries returns all listings sorted by plugin id.
func (s *Store) Entries() []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// Empty reports whether the store holds any listings.
func (s *Store) Empty() bool {
	return s == nil || len(s.entries) == 0
}

func isManifestFile(p string) bool {
	switch strings.ToLower(path.Base(p)) {
	case "webapp.json", "webapp.yaml", "webapp.yml":
		return true
	default:
		return false
	}
}

// entryID derives the plugin id from the manifest's parent directory,
// falling back to the file stem for manifests at the filesystem root.
func entryID(p string) string {
	dir := path.Dir(p)
	if dir == "." {
		base := path.Base(p)
		return strings.TrimSuffix(base, path.Ext(base))
	}
	return path.Base(dir)
}
