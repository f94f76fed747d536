package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// LoadPolicy reads a YAML policy bundle from disk and validates it.
// Bundles are loaded once, at startup or tax-year rollover, and
// treated as immutable afterwards.
func LoadPolicy(path string) (*TaxYearPolicy, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading policy bundle %s", path)
	}

	var policy TaxYearPolicy
	if err := v.Unmarshal(&policy); err != nil {
		return nil, errors.Wrapf(err, "decoding policy bundle %s", path)
	}

	if err := policy.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid policy bundle %s", path)
	}

	return &policy, nil
}
