package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// maxConfigSize bounds the YAML file read from disk.
const maxConfigSize = 1 << 20

// Config holds the profiling run parameters. Zero-valued fields in a YAML
// file keep their defaults.
type Config struct {
	ShapeArcsec    [2]float64 `yaml:"shape_arcsec"`
	PixelScale     float64    `yaml:"pixel_scale"`
	PSFSize        int        `yaml:"psf_size"`
	PSFSigma       float64    `yaml:"psf_sigma"`
	SubSize        int        `yaml:"sub_size"`
	Repeats        int        `yaml:"repeats"`
	EinsteinRadius float64    `yaml:"einstein_radius"`
	SourceSigma    float64    `yaml:"source_sigma"`
}

// DefaultConfig mirrors the canonical frame-convolver timing run: a 4"
// field at 0.05"/pixel with a 21×21 PSF.
func DefaultConfig() Config {
	return Config{
		ShapeArcsec:    [2]float64{4, 4},
		PixelScale:     0.05,
		PSFSize:        21,
		PSFSigma:       2,
		SubSize:        2,
		Repeats:        1,
		EinsteinRadius: 1,
		SourceSigma:    0.3,
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return cfg, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks every field for a usable value.
func (c Config) Validate() error {
	for _, v := range c.ShapeArcsec {
		if !positive(v) {
			return fmt.Errorf("shape_arcsec must be positive, got %v", c.ShapeArcsec)
		}
	}
	switch {
	case !positive(c.PixelScale):
		return fmt.Errorf("pixel_scale must be positive, got %v", c.PixelScale)
	case c.PSFSize < 1 || c.PSFSize%2 == 0:
		return fmt.Errorf("psf_size must be a positive odd number, got %d", c.PSFSize)
	case !positive(c.PSFSigma):
		return fmt.Errorf("psf_sigma must be positive, got %v", c.PSFSigma)
	case c.SubSize < 1:
		return fmt.Errorf("sub_size must be at least 1, got %d", c.SubSize)
	case c.Repeats < 1:
		return fmt.Errorf("repeats must be at least 1, got %d", c.Repeats)
	case c.EinsteinRadius < 0 || math.IsNaN(c.EinsteinRadius) || math.IsInf(c.EinsteinRadius, 0):
		return fmt.Errorf("einstein_radius must be finite and non-negative, got %v", c.EinsteinRadius)
	case !positive(c.SourceSigma):
		return fmt.Errorf("source_sigma must be positive, got %v", c.SourceSigma)
	}

	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
