// Package configloader assembles service configuration from a yaml file, a .env file and the process environment.
package configloader

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultConfigFile = "config.yaml"
	defaultEnvFile    = ".env"
)

type Validator interface {
	Validate() error
}

// Sources names the files consulted by LoadFrom. Missing files are skipped.
type Sources struct {
	ConfigFile string
	EnvFile    string
}

// Load reads config.yaml and .env from the working directory, then the environment variables
// prefixed with <SERVICENAME>_, and validates the result.
func Load[T Validator](serviceName string) (T, error) {
	return LoadFrom[T](serviceName, Sources{ConfigFile: defaultConfigFile, EnvFile: defaultEnvFile})
}

// LoadFrom works like Load with explicit file locations.
// Later sources override earlier ones: yaml file, then .env file, then system environment.
func LoadFrom[T Validator](serviceName string, src Sources) (T, error) {
	var cfg T
	k := koanf.New(".")

	envPrefix := fmt.Sprintf("%s_", strings.ToUpper(serviceName))
	envTransformer := func(key string) string {
		key = strings.ToLower(key)
		key = strings.TrimPrefix(key, strings.ToLower(envPrefix))
		return strings.ReplaceAll(key, "_", ".")
	}

	if src.ConfigFile != "" {
		if err := k.Load(file.Provider(src.ConfigFile), yaml.Parser()); err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("error loading YAML config file '%s': %w", src.ConfigFile, err)
			}
		}
	}

	if src.EnvFile != "" {
		envFileMap, err := godotenv.Read(src.EnvFile)
		switch {
		case err == nil:
			envMap := make(map[string]any, len(envFileMap))
			for key, value := range envFileMap {
				if !strings.HasPrefix(strings.ToUpper(key), envPrefix) {
					continue
				}
				envMap[envTransformer(key)] = value
			}
			if err := k.Load(confmap.Provider(envMap, "."), nil); err != nil {
				log.Printf("WARN: error loading %s config: %v", src.EnvFile, err)
			}
		case !os.IsNotExist(err):
			log.Printf("WARN: error reading %s file: %v", src.EnvFile, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransformer), nil); err != nil {
		log.Printf("WARN: error loading system env vars: %v", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
