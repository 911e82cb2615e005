// Package director owns the single current scene and runs transitions
// between scenes: preload, attach, create, then retire the previous one.
package director

import (
	"fmt"
	"sync"

	"github.com/younwookim/gamekit/internal/application/scene"
	"github.com/younwookim/gamekit/internal/application/state"
	"github.com/younwookim/gamekit/internal/domain/asset"
)

// TransitionError reports a failed scene switch. The previous scene
// stays current and operational; the caller decides whether to retry.
type TransitionError struct {
	Scene string
	Err   error
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("switch to %s: %v", e.Scene, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

// Preloader resolves a scene's declared asset subset. *assets.Loader
// satisfies this.
type Preloader interface {
	Load(req asset.Request, onProgress func(int)) error
}

// Surface is the rendering surface scenes attach to. It exposes its
// logical size and accepts drawable nodes; the director never draws.
type Surface interface {
	Attach(scene.Node)
	Detach(scene.Node)
	Size() (width, height int)
}

type handle struct {
	scene scene.Scene
	state state.State
}

// Director drives scene transitions and forwards resize events to the
// current scene. At most one scene is current at any time.
type Director struct {
	mu      sync.Mutex
	loader  Preloader
	surface Surface
	current *handle
}

// New creates a director rendering onto surface and preloading through
// loader.
func New(loader Preloader, surface Surface) *Director {
	return &Director{loader: loader, surface: surface}
}

// Switch transitions to next: preload its declared subset, attach its
// root, create it, size it, then detach and retire the previous scene.
// The new root is attached before the old one is removed so no blank
// frame is composited; both coexist for at most that one frame.
//
// If preload fails the transition aborts, the previous scene remains
// current, and the failure is returned as a *TransitionError. There is
// no automatic retry and in-flight fetches are not aborted.
func (d *Director) Switch(next scene.Scene) error {
	h := &handle{scene: next, state: state.StatePreloading}

	var onProgress func(int)
	if pr, ok := next.(scene.ProgressReceiver); ok {
		onProgress = pr.OnLoadProgress
	}
	if err := d.loader.Load(next.Declare(), onProgress); err != nil {
		return &TransitionError{Scene: fmt.Sprintf("%T", next), Err: err}
	}
	h.state = state.StatePreloaded

	d.mu.Lock()
	defer d.mu.Unlock()

	d.surface.Attach(next.Root())
	next.OnCreated()
	h.state = state.StateCreated
	next.OnResize(d.surface.Size())

	if prev := d.current; prev != nil {
		d.surface.Detach(prev.scene.Root())
		prev.state = state.StateDestroyed
	}
	d.current = h
	return nil
}

// Resize forwards a new surface size to the current scene. A scene
// mid-transition is never resized before its OnCreated completed.
func (d *Director) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current != nil && d.current.state == state.StateCreated {
		d.current.scene.OnResize(width, height)
	}
}

// Update advances the current scene by one frame.
func (d *Director) Update() error {
	d.mu.Lock()
	h := d.current
	d.mu.Unlock()
	if h == nil {
		return nil
	}
	return h.scene.Update()
}

// Current returns the current scene, or nil before the first switch.
func (d *Director) Current() scene.Scene {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return nil
	}
	return d.current.scene
}

// CurrentState returns the lifecycle state of the current scene.
func (d *Director) CurrentState() state.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return state.StateUnloaded
	}
	return d.current.state
}
