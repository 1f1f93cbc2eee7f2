package config

var Presets = map[string]*Config{
	"quick": {
		Frames: 240, FPS: 60, Probe: DefaultProbe, DataDir: DefaultDataDir,
	},
	"long": {
		Frames: 2400, FPS: 60, Probe: DefaultProbe, DataDir: DefaultDataDir,
	},
	// sized so FFT zero-padding stays cheap
	"spectral": {
		Frames: 1024, FPS: 60, Probe: DefaultProbe, DataDir: DefaultDataDir,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
