// Package game provides the ebiten run loop and the rendering surface
// scene roots attach to.
package game

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamekit/internal/application/director"
	"github.com/younwookim/gamekit/internal/application/scene"
)

// Game implements ebiten.Game and director.Surface. It keeps the
// ordered list of attached scene roots and draws them back to front;
// during a scene switch the outgoing and incoming roots coexist here
// for at most one frame.
//
// Attach and Detach are called from the goroutine driving transitions
// while Draw runs on the game loop, so the node list is lock-guarded.
type Game struct {
	mu       sync.Mutex
	nodes    []scene.Node
	width    int
	height   int
	director *director.Director
}

// New creates a game surface with the given initial logical size. The
// real size tracks the window once the run loop starts.
func New(width, height int) *Game {
	return &Game{width: width, height: height}
}

// SetDirector wires the director whose scenes this surface runs. Must
// be called before ebiten.RunGame.
func (g *Game) SetDirector(d *director.Director) {
	g.director = d
}

// Attach adds a scene root to the draw list. Implements director.Surface.
func (g *Game) Attach(n scene.Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = append(g.nodes, n)
}

// Detach removes a scene root from the draw list. Implements director.Surface.
func (g *Game) Detach(n scene.Node) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, a := range g.nodes {
		if a == n {
			g.nodes = append(g.nodes[:i], g.nodes[i+1:]...)
			return
		}
	}
}

// Size returns the current logical size. Implements director.Surface.
func (g *Game) Size() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.width, g.height
}

// Update advances the current scene. Implements ebiten.Game.
func (g *Game) Update() error {
	if g.director == nil {
		return nil
	}
	return g.director.Update()
}

// Draw renders every attached scene root in attach order.
// Implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	nodes := append([]scene.Node(nil), g.nodes...)
	g.mu.Unlock()
	for _, n := range nodes {
		n.Draw(screen)
	}
}

// Layout tracks the outside size and forwards changes to the director
// as resize events. Implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	changed := outsideWidth != g.width || outsideHeight != g.height
	g.width = outsideWidth
	g.height = outsideHeight
	g.mu.Unlock()

	if changed && g.director != nil {
		g.director.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
