package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultPath = "/config/config.yaml"
	localPath   = "./config/config.yaml"
)

// Load resolves the config file from CONFIG_PATH. With LOCAL=true it also
// reads ./.env into the environment and defaults to ./config/config.yaml.
func Load() (*Viper, error) {
	local := os.Getenv("LOCAL") == "true"
	if local {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return NewViper(resolvePath(os.Getenv("CONFIG_PATH"), local))
}

func resolvePath(env string, local bool) string {
	switch {
	case env != "":
		return env
	case local:
		return localPath
	default:
		return defaultPath
	}
}
