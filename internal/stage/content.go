package stage

import (
	_ "embed"
	"fmt"
	"os"

	"voxfield/internal/core"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Step is the text shown alongside one stage.
type Step struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Description string `yaml:"description"`
}

// Content is the narrative text, one Step per stage index.
type Content struct {
	Steps []Step `yaml:"steps"`
}

// At returns the text for stage i, falling back to the first step.
func (c *Content) At(i int) Step {
	if i < 0 || i >= len(c.Steps) {
		if len(c.Steps) == 0 {
			return Step{}
		}
		return c.Steps[0]
	}
	return c.Steps[i]
}

// DefaultContent returns the built-in narrative.
func DefaultContent() *Content {
	c, err := ParseContent(defaultContent)
	if err != nil {
		panic(fmt.Sprintf("built-in stage content: %v", err))
	}
	return c
}

// LoadContent reads narrative text from a YAML file.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stage content: %w", err)
	}
	return ParseContent(data)
}

// ParseContent decodes narrative text and checks there is one step per stage.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse stage content: %w", err)
	}
	if len(c.Steps) != core.StageCount {
		return nil, fmt.Errorf("stage content has %d steps, want %d", len(c.Steps), core.StageCount)
	}
	return &c, nil
}
