package catalog

import (
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	zlog "github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// FileProviderConfig holds the settings of a YAML catalog file source.
type FileProviderConfig struct {
	Path     string `yaml:"path" mapstructure:"path" validate:"required"`
	Optional bool   `yaml:"optional" mapstructure:"optional" default:"false"` // Missing file yields an empty catalog
}

// FileProvider reads tracks and artists from a YAML catalog file.
type FileProvider struct {
	config *FileProviderConfig
}

// NewFileProvider creates a new FileProvider from raw provider settings.
func NewFileProvider(settings map[string]any) (*FileProvider, error) {
	var config FileProviderConfig
	if err := mapstructure.Decode(settings, &config); err != nil {
		return nil, errors.Wrap(err, "failed to decode settings")
	}
	if err := defaults.Set(&config); err != nil {
		return nil, errors.Wrap(err, "failed to set defaults")
	}
	zlog.Debug().Msgf("file provider config: %+v", config)
	if err := validator.New().Struct(config); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}
	return &FileProvider{config: &config}, nil
}

// Load reads the catalog file.
func (p *FileProvider) Load(ctx context.Context) (Contents, error) {
	data, err := os.ReadFile(p.config.Path)
	if err != nil {
		if os.IsNotExist(err) && p.config.Optional {
			zlog.Info().Msgf("optional catalog file not found, skipping: path=%s", p.config.Path)
			return Contents{}, nil
		}
		return Contents{}, errors.Wrapf(err, "failed to read catalog file %s", p.config.Path)
	}

	var contents Contents
	if err := yaml.Unmarshal(data, &contents); err != nil {
		return Contents{}, errors.Wrapf(err, "failed to parse catalog file %s", p.config.Path)
	}
	return contents, nil
}

// Name returns the provider name.
func (p *FileProvider) Name() string {
	return "file"
}
