package config

import "errors"

// ValidateForRun checks what the server needs regardless of platform.
func ValidateForRun(cfg *Config) error {
	return errors.Join(
		cfg.Redis.Validate(),
		cfg.Store.Validate(),
	)
}
