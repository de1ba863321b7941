package config

import (
	"os"

	"github.com/davidepi/bincc/domain"
	"github.com/pelletier/go-toml/v2"
)

// LoadTOML reads and unmarshals a .bincc.toml file at path into a fresh
// Config seeded with DefaultConfig, so fields absent from the file keep
// their built-in defaults. Grounded on
// internal/config/toml_loader.go's PyscnTomlConfig pattern, simplified
// since this domain's config surface is much smaller than pyscn's.
func LoadTOML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, domain.NewConfigError("reading "+path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewConfigError("parsing "+path, err)
	}
	return cfg, nil
}

// SaveTOML writes cfg to path as TOML, used by `bincc init` to scaffold a
// starter .bincc.toml.
func SaveTOML(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return domain.NewConfigError("encoding config", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return domain.NewConfigError("writing "+path, err)
	}
	return nil
}
