// Package config loads the planner configuration from a YAML or JSON file with
// SP_ prefixed environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rhyrak/go-studyplan/internal/scheduler"
	"github.com/rhyrak/go-studyplan/pkg/model"
)

// EnvPrefix marks environment variables that override file values. Nested keys
// use a double underscore, e.g. SP_PREFERENCES__SUMMER__MAX_CREDITS.
const EnvPrefix = "SP_"

// Load starts from the default configuration, applies the file at path (if any)
// and then the environment. An empty path skips the file.
func Load(path string) (*scheduler.Configuration, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	cfg := scheduler.NewDefaultConfiguration()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	fillCreditCaps(k, cfg.Preferences)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillCreditCaps restores the credit cap of preference entries that only set
// min_free_days, since decoding replaces the whole entry.
func fillCreditCaps(k *koanf.Koanf, prefs model.Preferences) {
	for name, pref := range prefs {
		if k.Exists("preferences." + name + ".max_credits") {
			continue
		}
		pref.MaxCredits = model.MaxRegularCredits
		if name == model.SemesterType(model.SummerSemester) {
			pref.MaxCredits = model.MaxSummerCredits
		}
		prefs[name] = pref
	}
}
