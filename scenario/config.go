package scenario

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Item kinds accepted in [[item]] tables.
const (
	KindRay       = "ray"
	KindFreeSpace = "freespace"
	KindLens      = "lens"
	KindMirror    = "mirror"
	KindMatrix    = "matrix"
)

// Item is one [[item]] table. Pointer fields distinguish "absent" from 0.
type Item struct {
	Kind string `toml:"kind"`

	// ray
	Height *float64 `toml:"height"`
	Angle  *float64 `toml:"angle"`

	// freespace
	Distance *float64 `toml:"distance"`

	// lens
	Focus *float64 `toml:"focus"`

	// matrix
	A *float64 `toml:"a"`
	B *float64 `toml:"b"`
	C *float64 `toml:"c"`
	D *float64 `toml:"d"`
}

// Config holds a scenario: what to trace and where to draw it.
type Config struct {
	// Output is the PNG path, or the empty string to skip rendering.
	Output string `toml:"output"`

	// Width and Height are the image size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Strict traces each ray only through the elements added after it.
	Strict bool `toml:"strict"`

	// Unit labels lengths in reports (mm, um, ...). No conversion is done.
	Unit string `toml:"unit"`

	Items []Item `toml:"item"`
}

// DefaultConfig returns the classic two-ray, two-lens relay: rays
// (0 mm, 0.1 rad) and (5 mm, 0 rad), lenses of f = 50 mm at 100 mm and
// 300 mm, and 100 mm of propagation after the second lens.
func DefaultConfig() *Config {
	return &Config{
		Output: "example.png",
		Width:  1200,
		Height: 600,
		Unit:   "mm",
		Items: []Item{
			ray(0, 0.1),
			ray(5, 0),
			freeSpace(100),
			lens(50),
			freeSpace(200),
			lens(50),
			freeSpace(100),
		},
	}
}

// ParseFile decodes the TOML file at path on top of DefaultConfig.
func ParseFile(path string) (*Config, error) {
	conf := DefaultConfig()
	fresh := &Config{}
	md, err := toml.DecodeFile(path, fresh)
	if err != nil {
		return nil, fmt.Errorf("ParseFile(%s): %w", path, err)
	}

	return merge(conf, fresh, md)
}

// Decode is ParseFile for in-memory TOML text.
func Decode(text string) (*Config, error) {
	conf := DefaultConfig()
	fresh := &Config{}
	md, err := toml.Decode(text, fresh)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return merge(conf, fresh, md)
}

// merge copies every key defined in the file from fresh onto conf.
func merge(conf, fresh *Config, md toml.MetaData) (*Config, error) {
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("scenario: unknown keys: %s", strings.Join(keys, ", "))
	}
	if md.IsDefined("output") {
		conf.Output = fresh.Output
	}
	if md.IsDefined("width") {
		conf.Width = fresh.Width
	}
	if md.IsDefined("height") {
		conf.Height = fresh.Height
	}
	if md.IsDefined("strict") {
		conf.Strict = fresh.Strict
	}
	if md.IsDefined("unit") {
		conf.Unit = fresh.Unit
	}
	if md.IsDefined("item") {
		conf.Items = fresh.Items
	}

	return conf, nil
}

func f64(v float64) *float64 { return &v }

func ray(h, a float64) Item { return Item{Kind: KindRay, Height: f64(h), Angle: f64(a)} }
func freeSpace(d float64) Item { return Item{Kind: KindFreeSpace, Distance: f64(d)} }
func lens(f float64) Item { return Item{Kind: KindLens, Focus: f64(f)} }
