package config

import (
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Loader config of the image pipeline
type Loader struct {
	Timeout         int      `yaml:"timeout"`
	MaxRetries      int      `yaml:"maxRetries"`
	ProgressMinStep float64  `yaml:"progressMinStep"`
	PartialRatio    float64  `yaml:"partialRatio"`
	Cache           Cache    `yaml:"cache"`
	Prefetch        Prefetch `yaml:"prefetch"`
}

// Cache config of decoded assets
type Cache struct {
	Enable bool `yaml:"enable"`
	TTL    int  `yaml:"ttl"`
}

// Prefetch config
type Prefetch struct {
	Concurrency int `yaml:"concurrency"`
}

// Default returns a Loader config with the default values
func Default() *Loader {
	return &Loader{
		Timeout:         30,
		MaxRetries:      2,
		ProgressMinStep: 0.01,
		PartialRatio:    0.5,
		Cache: Cache{
			Enable: true,
			TTL:    300,
		},
		Prefetch: Prefetch{
			Concurrency: 4,
		},
	}
}

// Load reads the yaml file at the given path into a Loader config, on top of the defaults
func Load(fs afero.Fs, path string) (*Loader, error) {
	cfg := Default()

	b, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(b, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
