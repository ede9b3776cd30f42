package scene

import "github.com/lumen-render/lumen/pkg/renderer"

// Preset is a named built-in scene
type Preset struct {
	Name        string
	Description string
	Build       func(aspectRatio float64) (*Scene, renderer.Camera)
}

// Presets returns the built-in scenes in display order
func Presets() []Preset {
	return []Preset{
		{
			Name:        "default",
			Description: "Glass, metal and motion-blurred spheres under sky lighting",
			Build:       NewDefaultScene,
		},
		{
			Name:        "cornell",
			Description: "Cornell box with an area light and two rotated boxes",
			Build:       NewCornellScene,
		},
	}
}

// Lookup finds a preset by name
func Lookup(name string) (Preset, bool) {
	for _, preset := range Presets() {
		if preset.Name == name {
			return preset, true
		}
	}
	return Preset{}, false
}
