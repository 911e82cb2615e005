package director

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gamekit/internal/application/scene"
	"github.com/younwookim/gamekit/internal/application/state"
	"github.com/younwookim/gamekit/internal/domain/asset"
)

// recorder collects lifecycle events from the fakes so call ordering
// across director, surface and scenes can be asserted in one place.
type recorder struct {
	events []string
}

func (r *recorder) add(e string) { r.events = append(r.events, e) }

type stubLoader struct {
	rec      *recorder
	err      error
	progress []int
	requests []asset.Request
}

func (s *stubLoader) Load(req asset.Request, onProgress func(int)) error {
	s.requests = append(s.requests, req)
	if s.rec != nil {
		s.rec.add("load")
	}
	if s.err != nil {
		return s.err
	}
	for _, v := range s.progress {
		if onProgress != nil {
			onProgress(v)
		}
	}
	return nil
}

type fakeSurface struct {
	rec      *recorder
	w, h     int
	attached []scene.Node
}

func (f *fakeSurface) Attach(n scene.Node) {
	f.attached = append(f.attached, n)
	f.rec.add("attach " + nodeName(n))
}

func (f *fakeSurface) Detach(n scene.Node) {
	for i, a := range f.attached {
		if a == n {
			f.attached = append(f.attached[:i], f.attached[i+1:]...)
			break
		}
	}
	f.rec.add("detach " + nodeName(n))
}

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }

type fakeNode struct{ name string }

func (n *fakeNode) Draw(*ebiten.Image) {}

func nodeName(n scene.Node) string {
	if fn, ok := n.(*fakeNode); ok {
		return fn.name
	}
	return "?"
}

type fakeScene struct {
	rec      *recorder
	name     string
	node     *fakeNode
	req      asset.Request
	progress []int
	resizes  [][2]int
}

func newFakeScene(rec *recorder, name string) *fakeScene {
	return &fakeScene{rec: rec, name: name, node: &fakeNode{name: name}}
}

func (s *fakeScene) Declare() asset.Request { return s.req }
func (s *fakeScene) Root() scene.Node       { return s.node }
func (s *fakeScene) OnCreated()             { s.rec.add(s.name + " created") }
func (s *fakeScene) OnResize(w, h int) {
	s.resizes = append(s.resizes, [2]int{w, h})
	s.rec.add(fmt.Sprintf("%s resize %dx%d", s.name, w, h))
}
func (s *fakeScene) Update() error {
	s.rec.add(s.name + " update")
	return nil
}
func (s *fakeScene) OnLoadProgress(p int) { s.progress = append(s.progress, p) }

func newTestDirector(rec *recorder, loader *stubLoader) (*Director, *fakeSurface) {
	surface := &fakeSurface{rec: rec, w: 320, h: 240}
	return New(loader, surface), surface
}

func TestDirector_SwitchOrdering(t *testing.T) {
	rec := &recorder{}
	loader := &stubLoader{rec: rec}
	d, _ := newTestDirector(rec, loader)

	splash := newFakeScene(rec, "splash")
	require.NoError(t, d.Switch(splash))

	play := newFakeScene(rec, "play")
	require.NoError(t, d.Switch(play))

	// The new scene is attached and created before the old root leaves
	// the surface; no frame composites with neither scene attached.
	assert.Equal(t, []string{
		"load",
		"attach splash",
		"splash created",
		"splash resize 320x240",
		"load",
		"attach play",
		"play created",
		"play resize 320x240",
		"detach splash",
	}, rec.events)

	assert.Same(t, play, d.Current())
	assert.Equal(t, state.StateCreated, d.CurrentState())
}

func TestDirector_PreloadFailureKeepsPrevious(t *testing.T) {
	rec := &recorder{}
	loader := &stubLoader{rec: rec}
	d, surface := newTestDirector(rec, loader)

	splash := newFakeScene(rec, "splash")
	require.NoError(t, d.Switch(splash))

	cause := errors.New("fetch failed")
	loader.err = cause
	play := newFakeScene(rec, "play")
	err := d.Switch(play)

	var transErr *TransitionError
	require.ErrorAs(t, err, &transErr)
	assert.ErrorIs(t, err, cause)

	// Previous scene stays current and attached; the failed scene never
	// touched the surface.
	assert.Same(t, splash, d.Current())
	assert.Equal(t, []scene.Node{splash.node}, surface.attached)
	assert.NotContains(t, rec.events, "attach play")
	assert.NotContains(t, rec.events, "play created")
}

func TestDirector_ProgressForwarding(t *testing.T) {
	rec := &recorder{}
	loader := &stubLoader{rec: rec, progress: []int{34, 67, 100}}
	d, _ := newTestDirector(rec, loader)

	splash := newFakeScene(rec, "splash")
	require.NoError(t, d.Switch(splash))

	assert.Equal(t, []int{34, 67, 100}, splash.progress)
}

func TestDirector_DeclaredSubsetReachesLoader(t *testing.T) {
	rec := &recorder{}
	loader := &stubLoader{rec: rec}
	d, _ := newTestDirector(rec, loader)

	s := newFakeScene(rec, "splash")
	s.req = asset.Request{Images: map[string]string{"bunny": "bunny.png"}}
	require.NoError(t, d.Switch(s))

	require.Len(t, loader.requests, 1)
	assert.Equal(t, s.req, loader.requests[0])
}

func TestDirector_ResizeForwarding(t *testing.T) {
	rec := &recorder{}
	loader := &stubLoader{rec: rec}
	d, _ := newTestDirector(rec, loader)

	// No current scene yet: resize is a no-op.
	d.Resize(640, 480)

	splash := newFakeScene(rec, "splash")
	require.NoError(t, d.Switch(splash))
	d.Resize(640, 480)

	// First resize came from the switch itself, second from the event.
	assert.Equal(t, [][2]int{{320, 240}, {640, 480}}, splash.resizes)

	// A replaced scene receives no further resizes.
	play := newFakeScene(rec, "play")
	require.NoError(t, d.Switch(play))
	d.Resize(800, 600)

	assert.Equal(t, [][2]int{{320, 240}, {640, 480}}, splash.resizes)
	assert.Equal(t, [][2]int{{320, 240}, {800, 600}}, play.resizes)
}

func TestDirector_UpdateDelegates(t *testing.T) {
	rec := &recorder{}
	loader := &stubLoader{rec: rec}
	d, _ := newTestDirector(rec, loader)

	// No scene: update is a no-op.
	require.NoError(t, d.Update())

	splash := newFakeScene(rec, "splash")
	require.NoError(t, d.Switch(splash))
	require.NoError(t, d.Update())

	assert.Contains(t, rec.events, "splash update")
}

func TestDirector_CurrentBeforeFirstSwitch(t *testing.T) {
	rec := &recorder{}
	d, _ := newTestDirector(rec, &stubLoader{rec: rec})

	assert.Nil(t, d.Current())
	assert.Equal(t, state.StateUnloaded, d.CurrentState())
}
