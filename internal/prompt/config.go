package prompt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk prompt catalog: a default template plus specific
// templates keyed "{criterion}_{scope}".
type Config struct {
	Default   string            `yaml:"default"`
	Templates map[string]string `yaml:"templates"`
}

// LoadConfig reads the prompt catalog from PROMPTS_CONFIG_PATH, falling
// back to configs/prompts.yaml.
func LoadConfig() (*Config, error) {
	path := os.Getenv("PROMPTS_CONFIG_PATH")
	if path == "" {
		path = "configs/prompts.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Default == "" {
		return fmt.Errorf("prompt config missing default template")
	}
	return nil
}
