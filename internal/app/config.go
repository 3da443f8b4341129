package app

import (
	"flag"
	"fmt"
	"os"

	"voxfield/internal/camera"
	"voxfield/internal/field"
	"voxfield/internal/stage"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line and file parameters for the viewers.
type Config struct {
	File    string        `yaml:"-"`
	Count   int           `yaml:"count"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	TPS     int           `yaml:"tps"`
	Seed    int64         `yaml:"seed"`
	Content string        `yaml:"content"`
	Sound   bool          `yaml:"sound"`
	Camera  camera.Config `yaml:"camera"`
}

// NewConfig returns a Config populated with sensible defaults. A zero seed
// means a fresh layout every run.
func NewConfig() *Config {
	return &Config{
		Count:  field.DefaultCount,
		Width:  1280,
		Height: 720,
		TPS:    60,
		Camera: camera.DefaultConfig(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "config", c.File, "optional YAML config file; flags override it")
	fs.IntVar(&c.Count, "count", c.Count, "number of voxels")
	fs.IntVar(&c.Width, "width", c.Width, "window width")
	fs.IntVar(&c.Height, "height", c.Height, "window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the chaos layout (0 = random)")
	fs.StringVar(&c.Content, "content", c.Content, "optional YAML file with stage text")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "chime on stage changes (terminal viewer)")
}

// Resolve merges the config file named by -config underneath any flags that
// were set explicitly on fs.
func (c *Config) Resolve(fs *flag.FlagSet) error {
	if c.File == "" {
		c.normalize()
		return nil
	}
	merged, err := LoadConfig(c.File)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "count":
			merged.Count = c.Count
		case "width":
			merged.Width = c.Width
		case "height":
			merged.Height = c.Height
		case "tps":
			merged.TPS = c.TPS
		case "seed":
			merged.Seed = c.Seed
		case "content":
			merged.Content = c.Content
		case "sound":
			merged.Sound = c.Sound
		}
	})
	merged.File = c.File
	*c = *merged
	c.normalize()
	return nil
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c := NewConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.normalize()
	return c, nil
}

// StageContent returns the narrative text named by the config, or the
// built-in text when none is set.
func (c *Config) StageContent() (*stage.Content, error) {
	if c.Content == "" {
		return stage.DefaultContent(), nil
	}
	return stage.LoadContent(c.Content)
}

func (c *Config) normalize() {
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Width <= 0 {
		c.Width = 1280
	}
	if c.Height <= 0 {
		c.Height = 720
	}
	c.Camera.TPS = c.TPS
}
