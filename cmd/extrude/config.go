package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/extrude"
	"github.com/gogpu/extrude/text"
)

// config holds every CLI setting. A config file supplies values first;
// flags given on the command line override them.
type config struct {
	Config string `toml:"-" yaml:"-"`

	Text    string `toml:"text" yaml:"text"`
	Font    string `toml:"font" yaml:"font"`
	Backend string `toml:"backend" yaml:"backend"`
	Shape   string `toml:"shape" yaml:"shape"`

	Size           float64 `toml:"size" yaml:"size"`
	Depth          float64 `toml:"depth" yaml:"depth"`
	Bevel          bool    `toml:"bevel" yaml:"bevel"`
	BevelThickness float64 `toml:"bevel_thickness" yaml:"bevel_thickness"`
	BevelSize      float64 `toml:"bevel_size" yaml:"bevel_size"`
	Tolerance      float64 `toml:"tolerance" yaml:"tolerance"`
	Triangulator   string  `toml:"triangulator" yaml:"triangulator"`

	Out     string `toml:"out" yaml:"out"`
	Verbose bool   `toml:"verbose" yaml:"verbose"`
}

func defaultConfig() config {
	s := text.DefaultSettings()
	return config{
		Text:           "Hello",
		Backend:        "sfnt",
		Size:           s.Size,
		Depth:          s.Depth,
		BevelThickness: s.BevelThickness,
		BevelSize:      s.BevelSize,
		Tolerance:      s.TessTol,
		Triangulator:   "earcut",
		Out:            "mesh.obj",
	}
}

func newFlagSet(cfg *config) *flag.FlagSet {
	fs := flag.NewFlagSet("extrude", flag.ContinueOnError)
	fs.StringVar(&cfg.Config, "config", cfg.Config, "TOML or YAML config file")
	fs.StringVar(&cfg.Text, "text", cfg.Text, "text to extrude")
	fs.StringVar(&cfg.Font, "font", cfg.Font, "TTF/OTF file or typeface .json (default Go Regular)")
	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "font backend: sfnt or gotext")
	fs.StringVar(&cfg.Shape, "shape", cfg.Shape, "built-in shape instead of text: heart")
	fs.Float64Var(&cfg.Size, "size", cfg.Size, "font size")
	fs.Float64Var(&cfg.Depth, "depth", cfg.Depth, "half-thickness of the walls")
	fs.BoolVar(&cfg.Bevel, "bevel", cfg.Bevel, "enable bevel")
	fs.Float64Var(&cfg.BevelThickness, "bevel-thickness", cfg.BevelThickness, "bevel thickness")
	fs.Float64Var(&cfg.BevelSize, "bevel-size", cfg.BevelSize, "bevel size")
	fs.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "curve flatness tolerance")
	fs.StringVar(&cfg.Triangulator, "triangulator", cfg.Triangulator, "cap triangulator: earcut or poly2tri")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output OBJ file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	return fs
}

// parseArgs parses args, loading the file named by -config first when
// present.
func parseArgs(args []string) (config, error) {
	cfg := defaultConfig()
	if err := newFlagSet(&cfg).Parse(args); err != nil {
		return cfg, err
	}
	if cfg.Config == "" {
		return cfg, cfg.validate()
	}

	file := defaultConfig()
	if err := loadConfigFile(cfg.Config, &file); err != nil {
		return cfg, err
	}
	if err := newFlagSet(&file).Parse(args); err != nil {
		return file, err
	}
	return file, file.validate()
}

func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
	default:
		return fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func (c config) validate() error {
	switch c.Backend {
	case "sfnt", "gotext":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Triangulator {
	case "earcut", "poly2tri":
	default:
		return fmt.Errorf("unknown triangulator %q", c.Triangulator)
	}
	if c.Shape != "" && c.Shape != "heart" {
		return fmt.Errorf("unknown shape %q", c.Shape)
	}
	return nil
}

func (c config) triangulator() extrude.Triangulator {
	if c.Triangulator == "poly2tri" {
		return extrude.Poly2TriTriangulator{}
	}
	return extrude.EarcutTriangulator{}
}

func (c config) settings() text.Settings {
	return text.Settings{
		Size:           c.Size,
		Depth:          c.Depth,
		BevelEnabled:   c.Bevel,
		BevelThickness: c.BevelThickness,
		BevelSize:      c.BevelSize,
		TessTol:        c.Tolerance,
	}
}
