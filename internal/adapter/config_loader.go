package adapter

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	m "denolint.dev/pkg/denolint/internal/model"
)

// ConfigLoader reads a lint configuration file.
type ConfigLoader interface {
	Load(path m.Path) (*m.LoadedConfig, error)
}

// JSONConfigLoader loads configuration files of the form
//
//	{
//	  "rules": {"tags": ["recommended"], "include": [], "exclude": []},
//	  "files": {"include": [], "exclude": []}
//	}
//
// Every section and list is optional.
type JSONConfigLoader struct {
	validate *validator.Validate
}

// NewJSONConfigLoader constructs a JSONConfigLoader.
func NewJSONConfigLoader() *JSONConfigLoader {
	return &JSONConfigLoader{validate: validator.New()}
}

// Load parses and validates the configuration at path. It uses a private viper
// instance so the lint config never leaks into the CLI settings.
func (l *JSONConfigLoader) Load(path m.Path) (*m.LoadedConfig, error) {
	v := viper.New()
	v.SetConfigFile(string(path))
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file m.LintConfigFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := l.validate.Struct(file); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &m.LoadedConfig{
		Path:         path,
		Rules:        file.Rules,
		IncludePaths: toPaths(file.Files.Include),
		ExcludePaths: toPaths(file.Files.Exclude),
	}, nil
}

func toPaths(values []string) []m.Path {
	paths := make([]m.Path, 0, len(values))
	for _, value := range values {
		paths = append(paths, m.Path(value))
	}

	return paths
}
