package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/iupr/ocroam/internal/domain"
)

// File is looked up in the project root when no explicit path is given.
const File = "ocroam.yaml"

// Load reads the configuration for the tree at root. An explicit path must exist; the
// implicit root/ocroam.yaml is optional and its absence yields the defaults.
func Load(root, path string) (domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(root, File)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLFile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto.Ocroam)
}
