package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validGameJSON = `{
	"window": {"title": "Gamekit", "width": 1280, "height": 720},
	"assets": {"root": "assets", "sampleRate": 48000},
	"splash": {"displayDelaySec": 1.5, "assets": ["bunny", "font"]},
	"playing": {"assets": ["bunny", "click", "sheet"], "image": "bunny", "sheet": "sheet", "sound": "click"}
}`

func loaderFor(json string) *Loader {
	return NewFSLoader(fstest.MapFS{
		"game.json": {Data: []byte(json)},
	}, ".")
}

func TestLoader_LoadGame(t *testing.T) {
	cfg, err := loaderFor(validGameJSON).LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "Gamekit", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "assets", cfg.Assets.Root)
	assert.Equal(t, 48000, cfg.Assets.SampleRate)
	assert.Equal(t, 1.5, cfg.Splash.DisplayDelaySec)
	assert.Equal(t, []string{"bunny", "font"}, cfg.Splash.Assets)
	assert.Equal(t, "click", cfg.Playing.Sound)
}

func TestLoader_LoadGame_Defaults(t *testing.T) {
	cfg, err := loaderFor(`{"assets": {"root": "assets"}}`).LoadGame()
	require.NoError(t, err)

	assert.Equal(t, DefaultWidth, cfg.Window.Width)
	assert.Equal(t, DefaultHeight, cfg.Window.Height)
	assert.Equal(t, DefaultSampleRate, cfg.Assets.SampleRate)
	assert.Zero(t, cfg.Splash.DisplayDelaySec)
}

func TestLoader_LoadGame_Missing(t *testing.T) {
	l := NewFSLoader(fstest.MapFS{}, ".")
	_, err := l.LoadGame()
	assert.ErrorContains(t, err, "failed to read game.json")
}

func TestLoader_LoadGame_Malformed(t *testing.T) {
	_, err := loaderFor(`{"window":`).LoadGame()
	assert.ErrorContains(t, err, "failed to parse game.json")
}

func TestLoader_LoadGame_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"no asset root", `{}`, "assets.root is required"},
		{"negative delay", `{"assets": {"root": "a"}, "splash": {"displayDelaySec": -1}}`, "must not be negative"},
		{"negative size", `{"assets": {"root": "a"}, "window": {"width": -1}}`, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loaderFor(tt.json).LoadGame()
			assert.ErrorContains(t, err, tt.want)
		})
	}
}
