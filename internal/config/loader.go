package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"libshelf/internal/domain"
)

// fileConfig mirrors the optional libshelf.yaml layout.
type fileConfig struct {
	Scan struct {
		IncludeExt []string `mapstructure:"include_ext"`
		ExcludeExt []string `mapstructure:"exclude_ext"`
		AllowMedia bool     `mapstructure:"allow_media"`
	} `mapstructure:"scan"`
	Copy struct {
		Dest string `mapstructure:"dest"`
		Log  string `mapstructure:"log"`
	} `mapstructure:"copy"`
	Log LogSettings `mapstructure:"log"`
}

// DefaultConfigPaths returns the locations searched for libshelf.yaml
func DefaultConfigPaths() []string {
	paths := []string{"."}

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "libshelf"))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".libshelf"))
	}
	return paths
}

// Load layers file-based defaults under cfg: values already set by flags
// win. A named file must exist; when path is empty the default locations
// are searched and absence is not an error.
func Load(path string, cfg *Config) error {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("libshelf")
		v.SetConfigType("yaml")
		for _, p := range DefaultConfigPaths() {
			v.AddConfigPath(p)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if path == "" {
				return nil // nothing to layer in
			}
			return fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		if path != "" && os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrConfigNotFound, path)
		}
		return fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	var file fileConfig
	if err := v.Unmarshal(&file); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	if len(cfg.IncludeExt) == 0 {
		cfg.IncludeExt = file.Scan.IncludeExt
	}
	if len(cfg.ExcludeExt) == 0 {
		cfg.ExcludeExt = file.Scan.ExcludeExt
	}
	if !cfg.AllowMedia {
		cfg.AllowMedia = file.Scan.AllowMedia
	}
	if cfg.CopyDest == "" {
		cfg.CopyDest = file.Copy.Dest
	}
	if cfg.CopyLog == "" {
		cfg.CopyLog = file.Copy.Log
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = file.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = file.Log.Format
	}
	if cfg.Log.File == "" {
		cfg.Log.File = file.Log.File
	}
	return nil
}
