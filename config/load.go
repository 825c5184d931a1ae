package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load reads Settings from a YAML (or JSON/TOML — anything viper recognizes
// by extension) file at path, starting from Default and overriding whatever
// keys the file sets, then validates the result.
func Load(path string) (Settings, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.AddConfigPath(filepath.Dir(path))

	settings := Default()
	applyDefaults(vp, settings)

	if err := vp.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	if err := vp.Unmarshal(&settings); err != nil {
		return Settings{}, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func applyDefaults(vp *viper.Viper, s Settings) {
	vp.SetDefault("max_driver_names", s.MaxDriverNames)
	vp.SetDefault("wildcard_token", s.WildcardToken)
	vp.SetDefault("prefix_value_group", s.PrefixValueGroup)
	vp.SetDefault("prefix_regex", s.PrefixRegex)
	vp.SetDefault("prefix_date_range", s.PrefixDateRange)
	vp.SetDefault("prefix_integer_range", s.PrefixIntegerRange)
	vp.SetDefault("slice_cache_size", s.SliceCacheSize)
}
