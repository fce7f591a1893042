package config

// Overrides are command-line values applied over the file. Zero values
// leave the file setting alone.
type Overrides struct {
	FPS     int
	Seed    uint64
	Variant string
	NoSnow  bool
	Debug   bool
	LogFile string
	Width   int
	Height  int
	// Supersample is the render scale factor.
	Supersample int
}

func (o Overrides) apply(cfg *Config) {
	if o.FPS > 0 {
		cfg.Animation.FPS = o.FPS
	}
	if o.Seed != 0 {
		cfg.Scene.Seed = o.Seed
	}
	if o.Variant != "" {
		cfg.Scene.Variant = o.Variant
	}
	if o.NoSnow {
		cfg.Snow.Enabled = false
	}
	if o.Debug {
		cfg.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		cfg.Logging.LogFile = o.LogFile
	}
	if o.Width > 0 {
		cfg.Canvas.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Canvas.Height = o.Height
	}
	if o.Supersample > 0 {
		cfg.Canvas.Supersample = o.Supersample
	}
}
