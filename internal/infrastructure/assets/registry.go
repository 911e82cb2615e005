package assets

import (
	"image"
	"sync"

	"github.com/younwookim/gamekit/internal/domain/asset"
)

// Registry holds every loaded resource, one table per category, plus a
// combined id→url table of everything that has been stored. Entries are
// written by the loader as items complete and read by scenes.
//
// The lock guards map access only. Overlapping load calls for the same
// id are a caller error; the last writer wins.
type Registry struct {
	mu     sync.RWMutex
	images map[string]image.Image
	sounds map[string][]byte
	fonts  map[string]*asset.BitmapFont
	sheets map[string]*asset.Spritesheet
	urls   map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		images: make(map[string]image.Image),
		sounds: make(map[string][]byte),
		fonts:  make(map[string]*asset.BitmapFont),
		sheets: make(map[string]*asset.Spritesheet),
		urls:   make(map[string]string),
	}
}

// PutImage stores a decoded image under id.
func (r *Registry) PutImage(id, url string, img image.Image) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images[id] = img
	r.urls[id] = url
}

// Image returns the decoded image stored under id.
func (r *Registry) Image(id string) (image.Image, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	img, ok := r.images[id]
	return img, ok
}

// PutSound stores decoded PCM bytes under id.
func (r *Registry) PutSound(id, url string, pcm []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sounds[id] = pcm
	r.urls[id] = url
}

// Sound returns the decoded PCM bytes stored under id.
func (r *Registry) Sound(id string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pcm, ok := r.sounds[id]
	return pcm, ok
}

// PutFont stores a parsed bitmap font under id.
func (r *Registry) PutFont(id, url string, f *asset.BitmapFont) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fonts[id] = f
	r.urls[id] = url
}

// Font returns the bitmap font stored under id.
func (r *Registry) Font(id string) (*asset.BitmapFont, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.fonts[id]
	return f, ok
}

// PutSheet stores a spritesheet under id.
func (r *Registry) PutSheet(id, url string, s *asset.Spritesheet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sheets[id] = s
	r.urls[id] = url
}

// Sheet returns the spritesheet stored under id.
func (r *Registry) Sheet(id string) (*asset.Spritesheet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sheets[id]
	return s, ok
}

// URL returns the source URL a loaded resource came from.
func (r *Registry) URL(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.urls[id]
	return u, ok
}
