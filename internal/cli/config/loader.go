package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes environment variables read by Load.
const EnvPrefix = "RASTERIZER_"

// FileNames lists the configuration files searched in the working
// directory when none is given explicitly.
var FileNames = []string{"rasterizer.yaml", "rasterizer.yml"}

// cameraFlags maps flag names onto nested camera keys.
var cameraFlags = map[string]string{
	"rotate-x": "camera.rotate_x",
	"rotate-y": "camera.rotate_y",
	"rotate-z": "camera.rotate_z",
	"distance": "camera.distance",
}

// cameraEnv maps environment suffixes onto nested camera keys.
var cameraEnv = map[string]string{
	"rotate_x": "camera.rotate_x",
	"rotate_y": "camera.rotate_y",
	"rotate_z": "camera.rotate_z",
	"distance": "camera.distance",
}

// findConfigFile returns the file to read.
// Priority: explicit path > rasterizer.yaml > rasterizer.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range FileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration from defaults, file, environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override lower layers. The result
// is validated.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// RASTERIZER_ROTATE_Y -> camera.rotate_y, RASTERIZER_WIDTH -> width
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if nested, ok := cameraEnv[key]; ok {
			return nested
		}
		return key
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			if nested, ok := cameraFlags[f.Name]; ok {
				return nested, posflag.FlagVal(flags, f)
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
