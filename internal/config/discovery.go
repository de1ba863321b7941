package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ConfigFileName is the on-disk config file bincc looks for in the
// current directory and the home directory, unless the BINCC_CONFIG override
// (mirroring cmd/pyscn-mcp/main.go's PYSCN_CONFIG convention).
const ConfigFileName = ".bincc.toml"

// Discover locates the effective config file path: an explicit path if
// given, else the BINCC_CONFIG environment variable, else a .bincc.toml
// found in the current directory or, failing that, $HOME via viper's
// search path; parent directories are not searched. Returns "" if none is
// found, meaning defaults apply.
func Discover(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}

	v := viper.New()
	v.SetConfigName(strings.TrimSuffix(ConfigFileName, ".toml"))
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.SetEnvPrefix("BINCC")
	v.AutomaticEnv()

	if env := v.GetString("config"); env != "" {
		return env
	}
	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed()
	}
	return ""
}

// LoadConfig resolves the effective config path via Discover and loads it,
// falling back to DefaultConfig when nothing is found.
func LoadConfig(explicitPath string) (*Config, error) {
	path := Discover(explicitPath)
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadTOML(path)
}
