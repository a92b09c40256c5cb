package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// FileOptions controls loading settings from a file.
type FileOptions struct {
	// Path is the settings file to read. Format is inferred from the
	// extension (yaml, json, toml, anything viper supports).
	Path string

	// Watch re-reads the file on change and re-applies the settings.
	Watch bool

	// OnChange, if set, is called with the re-applied settings after each
	// watched change.
	OnChange func(Settings, fsnotify.Event)
}

// LoadFile reads settings from a file, applies them as the active settings
// and returns them. Environment values seed the struct, so file keys only
// need to name what they override.
func LoadFile(opts FileOptions) (Settings, error) {
	if opts.Path == "" {
		return Settings{}, fmt.Errorf("settings file path is empty")
	}

	v := viper.New()
	v.SetConfigFile(opts.Path)
	if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("read settings file %s: %w", opts.Path, err)
	}

	s, err := unmarshalSettings(v)
	if err != nil {
		return Settings{}, err
	}
	Set(s)

	if opts.Watch {
		v.OnConfigChange(func(e fsnotify.Event) {
			next, err := unmarshalSettings(v)
			if err != nil {
				// A broken edit must not take down settings; keep the last
				// good value and surface the problem on stderr via the
				// returned error path next time LoadFile runs.
				return
			}
			Set(next)
			if opts.OnChange != nil {
				opts.OnChange(next, e)
			}
		})
		v.WatchConfig()
	}

	return s, nil
}

func unmarshalSettings(v *viper.Viper) (Settings, error) {
	s := FromEnv()
	if err := defaults.Set(&s); err != nil {
		return Settings{}, fmt.Errorf("apply settings defaults: %w", err)
	}
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("validate settings: %w", err)
	}
	return s, nil
}
