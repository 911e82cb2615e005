// Package scene defines the contract between full-screen game scenes
// and the director that runs them.
//
// A scene moves through a fixed lifecycle: its declared asset subset is
// preloaded, its root node is attached to the rendering surface, then
// OnCreated builds the visual tree and OnResize positions it. Optional
// capabilities (progress reporting, a finish signal) are separate small
// interfaces rather than base-type hooks, so each variant declares only
// what it supports.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamekit/internal/domain/asset"
)

// Node is a drawable unit of scene content. The rendering surface draws
// attached nodes once per frame; nodes never draw outside that call.
type Node interface {
	Draw(screen *ebiten.Image)
}

// Scene represents one full-screen game state (splash, playing, ...).
type Scene interface {
	// Declare returns the scene's asset subset for preloading. An empty
	// request is valid and makes preload an immediate no-op.
	Declare() asset.Request

	// Root returns the scene's drawable root node. The director attaches
	// it to the rendering surface before OnCreated and detaches it when
	// the scene is replaced.
	Root() Node

	// OnCreated builds the scene's visual tree. Called exactly once per
	// scene instance, after preload resolved and the root is attached.
	OnCreated()

	// OnResize repositions existing content for a new surface size.
	// Called any number of times after OnCreated, never before it and
	// never after the scene is replaced. Must be idempotent.
	OnResize(width, height int)

	// Update advances per-frame state while the scene is current.
	Update() error
}

// ProgressReceiver is implemented by scenes that show load progress.
// Values are integers in [0,100], non-decreasing, reaching 100 when the
// preload succeeds; repeated values may occur.
type ProgressReceiver interface {
	OnLoadProgress(percent int)
}

// Finisher is implemented by scenes that know when they are logically
// done (a splash after its display delay, for instance). The director
// never inspects this; calling code decides whether to await it before
// switching away.
type Finisher interface {
	Finish() <-chan struct{}
}
