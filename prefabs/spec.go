package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/milk9111/spritewalk/render"
	"gopkg.in/yaml.v3"
)

// WalkerFile is the prefab describing how the walk cycle is shown.
const WalkerFile = "walker.yaml"

// LoadSpec decodes the named prefab into a T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WalkerSpec is the decoded walker.yaml.
type WalkerSpec struct {
	Name      string        `yaml:"name"`
	Window    WindowSpec    `yaml:"window"`
	Animation AnimationSpec `yaml:"animation"`
	Render    RenderSpec    `yaml:"render"`
}

// WindowSpec sizes and titles the window. Background is the clear color.
type WindowSpec struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Resizable  bool       `yaml:"resizable"`
	Background *YAMLColor `yaml:"background"`
}

// AnimationSpec sets how long each walk frame stays on screen. The walk
// cycle always loops.
type AnimationSpec struct {
	FrameDuration time.Duration `yaml:"frame_duration"`
}

// RenderSpec controls on-screen magnification and texture sampling.
type RenderSpec struct {
	Scale  float64 `yaml:"scale"`
	Filter string  `yaml:"filter"`
}

// LoadWalkerSpec reads walker.yaml, preferring the copy on disk.
func LoadWalkerSpec() (*WalkerSpec, error) {
	spec, err := LoadSpec[WalkerSpec](WalkerFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", WalkerFile, err)
	}
	return &spec, nil
}

// Validate reports the first field that cannot drive the player.
func (s *WalkerSpec) Validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	case s.Animation.FrameDuration <= 0:
		return fmt.Errorf("animation.frame_duration must be positive, got %v", s.Animation.FrameDuration)
	case s.Render.Scale <= 0:
		return fmt.Errorf("render.scale must be positive, got %v", s.Render.Scale)
	}
	switch s.Render.Filter {
	case "", "nearest", "linear":
	default:
		return fmt.Errorf("render.filter must be nearest or linear, got %q", s.Render.Filter)
	}
	return nil
}

// PlayerSettings converts the spec into the values a render.Player uses.
func (s *WalkerSpec) PlayerSettings() render.Settings {
	filter, _ := render.ParseFilter(s.Render.Filter)
	return render.Settings{
		FrameDuration: s.Animation.FrameDuration,
		Scale:         s.Render.Scale,
		Filter:        filter,
		Background:    s.BackgroundColor(),
	}
}

// BackgroundColor returns the clear color, white when unset.
func (s *WalkerSpec) BackgroundColor() color.Color {
	if s.Window.Background == nil || s.Window.Background.Color == nil {
		return color.White
	}
	return s.Window.Background.Color
}

// YAMLColor decodes "#RRGGBB" or "#RRGGBBAA" hex strings.
type YAMLColor struct {
	color.Color
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
