package nerf

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidColor is returned, wrapped, for theme colors that are not "#rrggbb" or "#rgb".
var ErrInvalidColor = errors.New("invalid color")

// Theme holds the colors and text size an application draws with.
type Theme struct {
	Background color.Color // Window background, drawn by App before the tree.
	Text       color.Color
	TextSize   float64 // In points.
	Button     ButtonColors
}

// DefaultTheme is light, with blue buttons.
func DefaultTheme() Theme {
	return Theme{
		Background: rgb(0xfcfcfc),
		Text:       rgb(0x333333),
		TextSize:   14,
		Button: ButtonColors{
			Idle:        rgb(0x007bff),
			Hovered:     rgb(0x0062cc),
			Pressed:     rgb(0x004a99),
			PressedLeft: rgb(0x0062cc),
		},
	}
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
}

// TextStyle returns the style for plain text in this theme.
func (t Theme) TextStyle() TextStyle {
	return TextStyle{Size: t.TextSize, Color: t.Text}
}

// themeFile is the on-disk form of a Theme. Empty fields keep the default.
type themeFile struct {
	Background string  `yaml:"background" toml:"background"`
	Text       string  `yaml:"text" toml:"text"`
	TextSize   float64 `yaml:"text-size" toml:"text-size"`
	Button     struct {
		Idle        string `yaml:"idle" toml:"idle"`
		Hovered     string `yaml:"hovered" toml:"hovered"`
		Pressed     string `yaml:"pressed" toml:"pressed"`
		PressedLeft string `yaml:"pressed-left" toml:"pressed-left"`
	} `yaml:"button" toml:"button"`
}

func (f themeFile) theme() (Theme, error) {
	t := DefaultTheme()
	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", f.Background, &t.Background},
		{"text", f.Text, &t.Text},
		{"button.idle", f.Button.Idle, &t.Button.Idle},
		{"button.hovered", f.Button.Hovered, &t.Button.Hovered},
		{"button.pressed", f.Button.Pressed, &t.Button.Pressed},
		{"button.pressed-left", f.Button.PressedLeft, &t.Button.PressedLeft},
	}
	for _, fl := range fields {
		if fl.hex == "" {
			continue
		}
		c, err := ParseColor(fl.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", fl.name, err)
		}
		*fl.dst = c
	}
	if f.TextSize < 0 {
		return Theme{}, fmt.Errorf("text-size must not be negative, got %v", f.TextSize)
	}
	if f.TextSize > 0 {
		t.TextSize = f.TextSize
	}
	return t, nil
}

// ParseColor parses a hex color like "#3272dc".
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// ParseThemeYAML parses a theme in YAML. Missing fields keep their default.
func ParseThemeYAML(buf []byte) (Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(buf, &f); err != nil {
		return Theme{}, fmt.Errorf("parsing yaml theme: %w", err)
	}
	return f.theme()
}

// ParseThemeTOML parses a theme in TOML. Missing fields keep their default.
func ParseThemeTOML(buf []byte) (Theme, error) {
	var f themeFile
	if _, err := toml.Decode(string(buf), &f); err != nil {
		return Theme{}, fmt.Errorf("parsing toml theme: %w", err)
	}
	return f.theme()
}

// LoadTheme reads a theme file, picking the format by extension: .yaml, .yml or .toml.
func LoadTheme(path string) (Theme, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme: %w", err)
	}
	var t Theme
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		t, err = ParseThemeYAML(buf)
	case ".toml":
		t, err = ParseThemeTOML(buf)
	default:
		return Theme{}, fmt.Errorf("theme %s: unknown extension %q", path, ext)
	}
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s: %w", path, err)
	}
	logger.Debug("theme loaded", "path", path)
	return t, nil
}
