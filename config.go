package dial

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every configuration validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes one slider. It is treated as immutable for the lifetime
// of an interaction session; changing it goes through Engine.Reset.
type Config struct {
	MinValue float64 `yaml:"minValue"`
	MaxValue float64 `yaml:"maxValue"`
	// Value seeds the engine's value and handle position.
	Value  float64 `yaml:"value"`
	Radius float64 `yaml:"radius"`
	// Size is the container's width and height.
	Size float64 `yaml:"size"`
	// DraggableOffset is extra radial distance for the handle's own circle.
	DraggableOffset float64 `yaml:"draggableOffset"`
	Motion          Motion  `yaml:"motion"`
	// RotationAdjustment, in degrees, is added to every value angle.
	RotationAdjustment float64 `yaml:"rotationAdjustment"`

	Style Style `yaml:"style"`
}

// Style holds presentation options for the ring and handle.
type Style struct {
	RingColor     Color   `yaml:"ringColor"`
	ArcColor      Color   `yaml:"arcColor"`
	HandleColor   Color   `yaml:"handleColor"`
	PressedColor  Color   `yaml:"pressedColor"`
	RingThickness float64 `yaml:"ringThickness"`
	HandleSize    float64 `yaml:"handleSize"`
}

// DefaultStyle is a 40px black handle disc on a 20px ring.
func DefaultStyle() Style {
	return Style{
		RingColor:     Color{R: 0.85, G: 0.85, B: 0.85, A: 1},
		ArcColor:      Color{R: 0.3, G: 0.7, B: 0.9, A: 1},
		HandleColor:   Color{A: 1},
		PressedColor:  Color{R: 0.25, G: 0.25, B: 0.25, A: 1},
		RingThickness: 20,
		HandleSize:    40,
	}
}

// DefaultConfig returns a 0..100 slider of radius 100 in a 200x200 container.
func DefaultConfig() Config {
	return Config{
		MinValue: 0,
		MaxValue: 100,
		Value:    0,
		Radius:   100,
		Size:     200,
		Motion:   MotionOnce,
		Style:    DefaultStyle(),
	}
}

// Padding is the space between the container edge and the ring.
func (c Config) Padding() float64 {
	return (c.Size - 2*c.Radius) / 2
}

// Center is the ring's center in container-relative coordinates.
func (c Config) Center() Vec2 {
	p := c.Radius + c.Padding()
	return Vec2{p, p}
}

// HandleRadius is the distance from Center at which the handle sits.
func (c Config) HandleRadius() float64 {
	return c.Radius + c.DraggableOffset
}

// Validate reports the first configuration problem, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"minValue", c.MinValue}, {"maxValue", c.MaxValue}, {"value", c.Value},
		{"radius", c.Radius}, {"size", c.Size}, {"draggableOffset", c.DraggableOffset},
		{"rotationAdjustment", c.RotationAdjustment},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("dial: %w: %s must be finite, got %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.MaxValue <= c.MinValue {
		return fmt.Errorf("dial: %w: maxValue (%v) must be greater than minValue (%v)",
			ErrInvalidConfig, c.MaxValue, c.MinValue)
	}
	if c.Radius <= 0 {
		return fmt.Errorf("dial: %w: radius must be positive, got %v", ErrInvalidConfig, c.Radius)
	}
	if c.Size <= 0 {
		return fmt.Errorf("dial: %w: size must be positive, got %v", ErrInvalidConfig, c.Size)
	}
	switch c.Motion {
	case MotionOnce:
		if c.Value < c.MinValue || c.Value >= c.MaxValue {
			return fmt.Errorf("dial: %w: value %v outside [%v, %v) for motion once",
				ErrInvalidConfig, c.Value, c.MinValue, c.MaxValue)
		}
	case MotionLoop:
		if c.MaxValue <= 0 {
			return fmt.Errorf("dial: %w: motion loop needs a positive maxValue, got %v",
				ErrInvalidConfig, c.MaxValue)
		}
	case MotionInfinite:
	default:
		return fmt.Errorf("dial: %w: unknown motion %d", ErrInvalidConfig, uint8(c.Motion))
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
// Unknown fields and trailing documents are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("dial: decode config yaml: %w", err)
	}
	// Anything but EOF after the first document is a second document.
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("dial: decode config yaml: unexpected trailing document")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file. See ParseConfig.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("dial: config path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("dial: read config file: %w", err)
	}
	return ParseConfig(data)
}
