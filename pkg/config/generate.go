package config

import (
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/dotsetup/pkg/errors"
)

// GenerateTOML renders the effective configuration back out as TOML,
// suitable for seeding a dotsetup.toml in the dotfiles root.
func GenerateTOML(cfg *Config) (string, error) {
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}
