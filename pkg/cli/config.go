package cli

import (
	"fmt"
	"slices"
)

// Config holds the settings shared by every command.
type Config struct {
	Width     uint           `mapstructure:"width"`
	Format    string         `mapstructure:"format"`
	Checked   bool           `mapstructure:"checked"`
	LogLevel  string         `mapstructure:"log-level"`
	LogFormat string         `mapstructure:"log-format"`
	Layouts   []LayoutConfig `mapstructure:"layouts"`
}

// LayoutConfig declares a register layout in the config file.
//
//	layouts:
//	  - name: status
//	    size: 16
//	    fields:
//	      - {name: ready, start: 0, width: 1, labels: {"0": busy, "1": ready}}
//	      - {name: code, start: 8, width: 8}
type LayoutConfig struct {
	Name   string        `mapstructure:"name"`
	Size   uint          `mapstructure:"size"`
	Fields []FieldConfig `mapstructure:"fields"`
}

// FieldConfig declares one field of a LayoutConfig. Label keys are numbers in any Go literal base.
type FieldConfig struct {
	Name   string            `mapstructure:"name"`
	Start  uint              `mapstructure:"start"`
	Width  uint              `mapstructure:"width"`
	Labels map[string]string `mapstructure:"labels"`
}

var (
	supportedWidths  = []uint{8, 16, 32, 64}
	supportedFormats = []string{formatBin, formatHex, formatDec, formatAll}
)

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() Config {
	return Config{
		Width:     8,
		Format:    formatAll,
		LogLevel:  "warn",
		LogFormat: "logfmt",
	}
}

// Validate checks the width, format and log format settings.
func (cfg *Config) Validate() error {
	if !slices.Contains(supportedWidths, cfg.Width) {
		return fmt.Errorf("unsupported width %d (want one of %v)", cfg.Width, supportedWidths)
	}
	if !slices.Contains(supportedFormats, cfg.Format) {
		return fmt.Errorf("unsupported format %q (want one of %v)", cfg.Format, supportedFormats)
	}
	if cfg.LogFormat != "logfmt" && cfg.LogFormat != "json" {
		return fmt.Errorf("unsupported log format %q (want logfmt or json)", cfg.LogFormat)
	}
	return nil
}
