// Package playing provides the main gameplay scene: it renders the
// resources its preload subset brought in and reacts to basic input.
package playing

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strconv"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/gamekit/internal/application/scene"
	"github.com/younwookim/gamekit/internal/domain/asset"
	"github.com/younwookim/gamekit/internal/infrastructure/assets"
	"github.com/younwookim/gamekit/internal/infrastructure/config"
)

var colorBackground = color.RGBA{0x1a, 0x1a, 0x2e, 0xff}

const (
	spriteSpeed    = 2.5
	framesPerCell  = 8
	sheetDrawScale = 4.0
)

// Playing is the play scene.
type Playing struct {
	cfg      config.PlayingConfig
	registry *assets.Registry
	audioCtx *audio.Context
	request  asset.Request

	mu       sync.Mutex
	width    int
	height   int
	sprite   *ebiten.Image
	sheetTex *ebiten.Image
	frames   []image.Rectangle
	frameIdx int
	tick     int
	click    *audio.Player
	font     *asset.BitmapFont
	fontTex  *ebiten.Image
	x, y     float64
	vx, vy   float64
	bounces  int
	created  bool
}

// New creates the play scene. audioCtx may be nil; the scene then runs
// silent (useful headless).
func New(cfg config.PlayingConfig, manifest *assets.Manifest, registry *assets.Registry, audioCtx *audio.Context) (*Playing, error) {
	req, err := manifest.Subset(cfg.Assets...)
	if err != nil {
		return nil, fmt.Errorf("playing assets: %w", err)
	}
	return &Playing{
		cfg:      cfg,
		registry: registry,
		audioCtx: audioCtx,
		request:  req,
		vx:       spriteSpeed,
		vy:       spriteSpeed,
	}, nil
}

// Declare implements scene.Scene.
func (p *Playing) Declare() asset.Request { return p.request }

// Root implements scene.Scene; the scene draws itself.
func (p *Playing) Root() scene.Node { return p }

// OnCreated pulls the scene's resources out of the registry and builds
// the renderable forms.
func (p *Playing) OnCreated() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if img, ok := p.registry.Image(p.cfg.Image); ok {
		p.sprite = ebiten.NewImageFromImage(img)
	}
	if sheet, ok := p.registry.Sheet(p.cfg.Sheet); ok {
		p.sheetTex = ebiten.NewImageFromImage(sheet.Image)

		names := make([]string, 0, len(sheet.Frames))
		for name := range sheet.Frames {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p.frames = append(p.frames, sheet.Frames[name])
		}
	}
	if pcm, ok := p.registry.Sound(p.cfg.Sound); ok && p.audioCtx != nil {
		p.click = p.audioCtx.NewPlayerFromBytes(pcm)
	}
	if f, ok := p.registry.Font(p.cfg.Font); ok {
		p.font = f
		p.fontTex = ebiten.NewImageFromImage(f.Page)
	}
	p.created = true
}

// OnResize implements scene.Scene: records the play area and keeps the
// sprite inside it.
func (p *Playing) OnResize(width, height int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = width
	p.height = height
	p.x = clamp(p.x, 0, float64(width)-p.spriteWidth())
	p.y = clamp(p.y, 0, float64(height)-p.spriteHeight())
}

// Update bounces the sprite, advances the sheet animation and plays the
// click sound on input edges.
func (p *Playing) Update() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.created {
		return nil
	}

	p.x += p.vx
	p.y += p.vy
	if p.x <= 0 || p.x >= float64(p.width)-p.spriteWidth() {
		p.vx = -p.vx
		p.x = clamp(p.x, 0, float64(p.width)-p.spriteWidth())
		p.bounces++
	}
	if p.y <= 0 || p.y >= float64(p.height)-p.spriteHeight() {
		p.vy = -p.vy
		p.y = clamp(p.y, 0, float64(p.height)-p.spriteHeight())
		p.bounces++
	}

	p.tick++
	if len(p.frames) > 0 && p.tick%framesPerCell == 0 {
		p.frameIdx = (p.frameIdx + 1) % len(p.frames)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.playClick()
	}
	return nil
}

func (p *Playing) playClick() {
	if p.click == nil {
		return
	}
	if !p.click.IsPlaying() {
		p.click.Rewind()
		p.click.Play()
	}
}

// Draw implements scene.Node.
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.created {
		return
	}

	if p.sprite != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.x, p.y)
		screen.DrawImage(p.sprite, op)
	}

	if p.sheetTex != nil && len(p.frames) > 0 {
		frame := p.frames[p.frameIdx]
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(sheetDrawScale, sheetDrawScale)
		op.GeoM.Translate(16, 16)
		screen.DrawImage(p.sheetTex.SubImage(frame).(*ebiten.Image), op)
	}

	p.drawBounceCount(screen)
}

// drawBounceCount renders the wall-hit counter top right with the
// loaded bitmap font, glyph by glyph.
func (p *Playing) drawBounceCount(screen *ebiten.Image) {
	if p.font == nil || p.fontTex == nil {
		return
	}
	digits := strconv.Itoa(p.bounces)

	total := 0
	for _, r := range digits {
		if c, ok := p.font.Chars[r]; ok {
			total += c.XAdvance
		}
	}
	pen := float64(p.width) - 16 - float64(total)
	for _, r := range digits {
		c, ok := p.font.Chars[r]
		if !ok {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(pen+float64(c.XOffset), 16+float64(c.YOffset))
		screen.DrawImage(p.fontTex.SubImage(c.Rect).(*ebiten.Image), op)
		pen += float64(c.XAdvance)
	}
}

func (p *Playing) spriteWidth() float64 {
	if p.sprite == nil {
		return 0
	}
	return float64(p.sprite.Bounds().Dx())
}

func (p *Playing) spriteHeight() float64 {
	if p.sprite == nil {
		return 0
	}
	return float64(p.sprite.Bounds().Dy())
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
