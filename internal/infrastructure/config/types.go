package config

// GameConfig is the root config for game.json. The configuration is
// static: loaded once at startup, never reloaded.
type GameConfig struct {
	Window  WindowConfig  `json:"window"`
	Assets  AssetsConfig  `json:"assets"`
	Splash  SplashConfig  `json:"splash"`
	Playing PlayingConfig `json:"playing"`
}

// WindowConfig sets up the window the game runs in.
type WindowConfig struct {
	Title  string `json:"title"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AssetsConfig points at the asset root and fixes the audio sample rate
// every sound is decoded to.
type AssetsConfig struct {
	Root       string `json:"root"`
	SampleRate int    `json:"sampleRate"`
}

// SplashConfig configures the splash scene: which assets it preloads,
// the id of the logo image it shows, and how long it stays up after
// creation before signalling finish.
type SplashConfig struct {
	DisplayDelaySec float64  `json:"displayDelaySec"`
	Assets          []string `json:"assets"`
	Logo            string   `json:"logo"`
}

// PlayingConfig configures the play scene: its preload subset and the
// ids of the resources it renders.
type PlayingConfig struct {
	Assets []string `json:"assets"`
	Image  string   `json:"image"`
	Sheet  string   `json:"sheet"`
	Sound  string   `json:"sound"`
	Font   string   `json:"font"`
}
