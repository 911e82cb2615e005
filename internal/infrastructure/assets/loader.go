package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/sync/errgroup"

	"github.com/younwookim/gamekit/internal/domain/asset"
)

// Loader resolves load requests into decoded resources in a Registry,
// reporting aggregate progress in [0,100].
type Loader struct {
	fetch      Fetcher
	registry   *Registry
	sampleRate int
}

// NewLoader creates a loader that fetches through fetch, decodes sounds
// at sampleRate, and stores results into registry.
func NewLoader(fetch Fetcher, registry *Registry, sampleRate int) *Loader {
	return &Loader{fetch: fetch, registry: registry, sampleRate: sampleRate}
}

// Registry returns the registry the loader stores into.
func (l *Loader) Registry() *Registry {
	return l.registry
}

// Load fetches and decodes every asset in the request. Each non-empty
// category runs as its own sub-loader; all categories start together.
// Every category carries an equal share of the 100-point total, split
// again per item inside the category, with integer remainders spread so
// the shares sum exactly.
//
// onProgress (may be nil) receives the running sum after every completed
// item; values never decrease and reach exactly 100 on success. Repeated
// calls with the same value can occur and the call count is unspecified.
//
// The first sub-loader failure becomes the returned error. Sub-loaders
// already in flight are not cancelled; whatever they stored stays in the
// registry (no rollback). An empty request reports 100 and returns nil.
func (l *Loader) Load(req asset.Request, onProgress func(int)) error {
	cats := req.Categories()
	if len(cats) == 0 {
		if onProgress != nil {
			onProgress(100)
		}
		return nil
	}

	weights := splitWeight(100, len(cats))
	tracker := newProgressTracker(onProgress)

	var g errgroup.Group
	for i, cat := range cats {
		weight := weights[i]
		switch cat {
		case asset.CategoryImage:
			g.Go(func() error { return l.loadImages(req.Images, weight, tracker) })
		case asset.CategorySound:
			g.Go(func() error { return l.loadSounds(req.Sounds, weight, tracker) })
		case asset.CategoryFont:
			g.Go(func() error { return l.loadFonts(req.Fonts, weight, tracker) })
		case asset.CategorySpritesheet:
			g.Go(func() error { return l.loadSheets(req.Sheets, weight, tracker) })
		}
	}
	return g.Wait()
}

func (l *Loader) loadImages(items map[string]string, weight int, tracker *progressTracker) error {
	shares := splitWeight(weight, len(items))
	i := 0
	for id, url := range items {
		data, err := l.fetch.Fetch(url)
		if err != nil {
			return &FetchError{ID: id, URL: url, Err: err}
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return &DecodeError{ID: id, URL: url, Err: err}
		}
		l.registry.PutImage(id, url, img)
		tracker.add(shares[i])
		i++
	}
	return nil
}

// loadSounds reports its whole category weight in one step once every
// sound is decoded: the audio backend exposes no incremental progress,
// so a smooth per-sound ramp cannot be promised.
func (l *Loader) loadSounds(items map[string]string, weight int, tracker *progressTracker) error {
	for id, url := range items {
		data, err := l.fetch.Fetch(url)
		if err != nil {
			return &FetchError{ID: id, URL: url, Err: err}
		}
		pcm, err := l.decodeSound(url, data)
		if err != nil {
			return &DecodeError{ID: id, URL: url, Err: err}
		}
		l.registry.PutSound(id, url, pcm)
	}
	tracker.add(weight)
	return nil
}

func (l *Loader) decodeSound(url string, data []byte) ([]byte, error) {
	var stream io.Reader
	var err error
	switch strings.ToLower(path.Ext(url)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(l.sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("no decoder for %s", path.Ext(url))
	}
	if err != nil {
		return nil, err
	}
	return io.ReadAll(stream)
}

func (l *Loader) loadFonts(items map[string]string, weight int, tracker *progressTracker) error {
	shares := splitWeight(weight, len(items))
	i := 0
	for id, url := range items {
		data, err := l.fetch.Fetch(url)
		if err != nil {
			return &FetchError{ID: id, URL: url, Err: err}
		}
		font, err := asset.ParseBitmapFont(data)
		if err != nil {
			return &DecodeError{ID: id, URL: url, Err: err}
		}

		pageURL := path.Join(path.Dir(url), font.PageFile)
		pageData, err := l.fetch.Fetch(pageURL)
		if err != nil {
			return &FetchError{ID: id, URL: pageURL, Err: err}
		}
		page, _, err := image.Decode(bytes.NewReader(pageData))
		if err != nil {
			return &DecodeError{ID: id, URL: pageURL, Err: err}
		}
		font.Page = page

		l.registry.PutFont(id, url, font)
		tracker.add(shares[i])
		i++
	}
	return nil
}

// loadSheets stores each sheet under the descriptor's own resolved name
// (the descriptor file's stem), not the request key. For a sheet at the
// root of the asset tree the two coincide; for nested paths or ad-hoc
// request keys they diverge and the resolved name wins.
func (l *Loader) loadSheets(items map[string]string, weight int, tracker *progressTracker) error {
	shares := splitWeight(weight, len(items))
	i := 0
	for id, url := range items {
		data, err := l.fetch.Fetch(url)
		if err != nil {
			return &FetchError{ID: id, URL: url, Err: err}
		}
		desc, err := asset.ParseSheetDescriptor(data)
		if err != nil {
			return &DecodeError{ID: id, URL: url, Err: err}
		}

		imgURL := path.Join(path.Dir(url), desc.Meta.Image)
		imgData, err := l.fetch.Fetch(imgURL)
		if err != nil {
			return &FetchError{ID: id, URL: imgURL, Err: err}
		}
		img, _, err := image.Decode(bytes.NewReader(imgData))
		if err != nil {
			return &DecodeError{ID: id, URL: imgURL, Err: err}
		}

		resolved := strings.TrimSuffix(path.Base(url), path.Ext(url))
		sheet, err := asset.BuildSpritesheet(resolved, desc, img)
		if err != nil {
			return &DecodeError{ID: id, URL: url, Err: err}
		}
		l.registry.PutSheet(sheet.Name, url, sheet)
		tracker.add(shares[i])
		i++
	}
	return nil
}
