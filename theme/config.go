package theme

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// paletteConfig is the on-disk shape of a palette override file:
//
//	[colors]
//	accent = "#e06c75"
//	background = "#1d2021"
type paletteConfig struct {
	Colors map[string]string `toml:"colors"`
}

// LoadOverrides reads palette overrides from a TOML file. The returned
// palette contains only the overridden roles; merge it with MergedWith.
func LoadOverrides(path string) (Palette, error) {
	var cfg paletteConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("theme: reading palette overrides: %w", err)
	}
	pal := Palette(cfg.Colors)
	if err := pal.Validate(); err != nil {
		return nil, err
	}
	return pal, nil
}
