// Package assets discovers asset files, fetches and decodes them, and
// tracks the loaded resources per category.
package assets

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/younwookim/gamekit/internal/domain/asset"
)

// Manifest is the static catalog of files under the asset root,
// classified by extension. It is built once by Scan and read-only
// afterwards; construct isolated instances per test rather than sharing
// an ambient global.
type Manifest struct {
	entries    map[string]asset.Entry
	byCategory map[asset.Category]map[string]string
	all        map[string]string
}

// Scan walks every file under the root of fsys and classifies it. The
// id of a file is its path with the extension stripped; the URL is the
// path itself. Files with unrecognized extensions appear in the combined
// table only; no error is raised for them. Two files sharing a stem get
// the same id: the category tables keep both, the combined table keeps
// the one walked last. Keep stems unique (BMFont-style page suffixes)
// when the combined table matters.
func Scan(fsys fs.FS) (*Manifest, error) {
	m := &Manifest{
		entries: make(map[string]asset.Entry),
		byCategory: map[asset.Category]map[string]string{
			asset.CategoryImage:       {},
			asset.CategorySound:       {},
			asset.CategoryFont:        {},
			asset.CategorySpritesheet: {},
		},
		all: make(map[string]string),
	}

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := path.Ext(p)
		id := strings.TrimSuffix(p, ext)
		cat := asset.Classify(ext)

		m.entries[id] = asset.Entry{ID: id, URL: p, Category: cat}
		m.all[id] = p
		if cat != asset.CategoryUnknown {
			m.byCategory[cat][id] = p
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset root: %w", err)
	}
	return m, nil
}

// Lookup returns the entry for an id.
func (m *Manifest) Lookup(id string) (asset.Entry, bool) {
	e, ok := m.entries[id]
	return e, ok
}

// Category returns the id→url table for one category. The returned map
// is the manifest's own; callers must treat it as read-only.
func (m *Manifest) Category(c asset.Category) map[string]string {
	return m.byCategory[c]
}

// All returns the combined id→url table, unknown extensions included.
func (m *Manifest) All() map[string]string {
	return m.all
}

// Subset builds a load request from declared ids. Every id must be
// present in the manifest and classified into a typed category; ad-hoc
// URLs outside the manifest go through a hand-built Request instead.
func (m *Manifest) Subset(ids ...string) (asset.Request, error) {
	var req asset.Request
	for _, id := range ids {
		e, ok := m.entries[id]
		if !ok {
			return asset.Request{}, fmt.Errorf("asset %q not in manifest", id)
		}
		if e.Category == asset.CategoryUnknown {
			return asset.Request{}, fmt.Errorf("asset %q has no loadable category", id)
		}
		req.Add(e)
	}
	return req, nil
}
