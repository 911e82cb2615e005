// Package splash provides the loading scene shown at startup: a logo
// panel, a progress bar driven by asset-load progress, and a finish
// signal after a configured display delay.
package splash

import (
	"fmt"
	"image/color"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/gamekit/internal/application/scene"
	"github.com/younwookim/gamekit/internal/domain/asset"
	"github.com/younwookim/gamekit/internal/infrastructure/assets"
	"github.com/younwookim/gamekit/internal/infrastructure/config"
)

var (
	colorBackground = color.RGBA{0x40, 0x40, 0x40, 0xff}
	colorPanel      = color.RGBA{0x50, 0x50, 0x50, 0xff}
	colorPanelEdge  = color.RGBA{0x30, 0x30, 0x30, 0xff}
	colorBarTrack   = color.RGBA{0x28, 0x28, 0x28, 0xff}
	colorBarFill    = color.RGBA{0x6b, 0xc0, 0x6b, 0xff}
)

const (
	panelW = 320
	panelH = 160
	barW   = 280
	barH   = 14
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// Splash is the loading scene.
type Splash struct {
	cfg      config.SplashConfig
	registry *assets.Registry
	request  asset.Request

	percent atomic.Int32

	mu       sync.Mutex
	width    int
	height   int
	panel    *ebiten.Image
	logo     *ebiten.Image
	barTrack *ebiten.Image
	barFill  *ebiten.Image
	skew     float64
	created  bool

	finish     chan struct{}
	finishOnce sync.Once
}

// New creates the splash scene. Its preload subset is resolved against
// the manifest up front so a bad config fails before any transition.
func New(cfg config.SplashConfig, manifest *assets.Manifest, registry *assets.Registry) (*Splash, error) {
	req, err := manifest.Subset(cfg.Assets...)
	if err != nil {
		return nil, fmt.Errorf("splash assets: %w", err)
	}
	return &Splash{
		cfg:      cfg,
		registry: registry,
		request:  req,
		finish:   make(chan struct{}),
	}, nil
}

// Declare implements scene.Scene.
func (s *Splash) Declare() asset.Request { return s.request }

// Root implements scene.Scene; the splash draws itself.
func (s *Splash) Root() scene.Node { return s }

// OnLoadProgress implements scene.ProgressReceiver.
func (s *Splash) OnLoadProgress(percent int) {
	s.percent.Store(int32(percent))
}

// OnCreated builds the panel chrome and starts the display-delay timer
// behind Finish.
func (s *Splash) OnCreated() {
	panel := buildPanel()
	track := buildBar(colorBarTrack, barW)
	fill := buildBar(colorBarFill, barW)

	s.mu.Lock()
	s.panel = panel
	s.barTrack = track
	s.barFill = fill
	if img, ok := s.registry.Image(s.cfg.Logo); ok {
		s.logo = ebiten.NewImageFromImage(img)
	}
	s.created = true
	s.mu.Unlock()

	delay := time.Duration(s.cfg.DisplayDelaySec * float64(time.Second))
	time.AfterFunc(delay, func() {
		s.finishOnce.Do(func() { close(s.finish) })
	})
}

// buildPanel renders the splash tile: two stacked rounded rectangles,
// the lower one acting as a drop edge.
func buildPanel() *ebiten.Image {
	dc := gg.NewContext(panelW, panelH)
	dc.SetColor(colorPanelEdge)
	dc.DrawRoundedRectangle(0, 8, panelW, panelH-8, 24)
	dc.Fill()
	dc.SetColor(colorPanel)
	dc.DrawRoundedRectangle(0, 0, panelW, panelH-8, 24)
	dc.Fill()
	return ebiten.NewImageFromImage(dc.Image())
}

func buildBar(c color.Color, width float64) *ebiten.Image {
	dc := gg.NewContext(barW, barH)
	dc.SetColor(c)
	dc.DrawRoundedRectangle(0, 0, width, barH, barH/2)
	dc.Fill()
	return ebiten.NewImageFromImage(dc.Image())
}

// OnResize implements scene.Scene.
func (s *Splash) OnResize(width, height int) {
	s.mu.Lock()
	s.width = width
	s.height = height
	s.mu.Unlock()
}

// Update advances the intro skew animation.
func (s *Splash) Update() error {
	s.mu.Lock()
	if s.skew < 90.0 {
		s.skew += 1.5
	}
	s.mu.Unlock()
	return nil
}

// Finish implements scene.Finisher: closed once the display delay after
// creation has elapsed.
func (s *Splash) Finish() <-chan struct{} {
	return s.finish
}

// Draw implements scene.Node. A not-yet-created splash paints only the
// background; the surface may composite the root one frame before
// OnCreated runs.
func (s *Splash) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s.mu.Lock()
	created := s.created
	w, h := s.width, s.height
	panel, logo := s.panel, s.logo
	track, fill := s.barTrack, s.barFill
	skew := s.skew
	s.mu.Unlock()
	if !created {
		return
	}

	cx, cy := float64(w)/2, float64(h)/2
	percent := int(s.percent.Load())

	// The panel eases in by unwinding a horizontal shear from 90° to 0.
	shear := (90.0 - skew) * math.Pi / 180.0
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-panelW/2, -panelH/2)
	op.GeoM.Skew(shear, 0)
	op.GeoM.Translate(cx, cy-panelH/2)
	screen.DrawImage(panel, op)

	if logo != nil {
		lw := logo.Bounds().Dx()
		lh := logo.Bounds().Dy()
		lop := &ebiten.DrawImageOptions{}
		lop.GeoM.Translate(cx-float64(lw)/2, cy-panelH/2-float64(lh)/2)
		screen.DrawImage(logo, lop)
	}

	barY := cy + panelH/2 + 24
	bop := &ebiten.DrawImageOptions{}
	bop.GeoM.Translate(cx-barW/2, barY-barH/2)
	screen.DrawImage(track, bop)
	if percent > 0 {
		fop := &ebiten.DrawImageOptions{}
		fop.GeoM.Scale(float64(percent)/100.0, 1)
		fop.GeoM.Translate(cx-barW/2, barY-barH/2)
		screen.DrawImage(fill, fop)
	}

	msg := fmt.Sprintf("loading %d%%", percent)
	top := &text.DrawOptions{}
	top.GeoM.Translate(cx-float64(len(msg))*3.5, barY+16)
	top.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, labelFace, top)
}
