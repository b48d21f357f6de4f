package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix = "CCHMOD_"
	delim     = "."
	tagName   = "koanf"
)

type Validator interface {
	Validate() error
}

// RegisterFlags adds a flag for every field of cfg that carries a description tag.
// The koanf tag becomes the long flag name and the current field value its default.
func RegisterFlags(fs *pflag.FlagSet, cfg interface{}) {
	v := reflect.Indirect(reflect.ValueOf(cfg))
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		name := field.Tag.Get(tagName)
		usage, ok := field.Tag.Lookup("description")
		if !ok || name == "" || name == "-" {
			continue
		}
		short := field.Tag.Get("short")

		switch field.Type.Kind() {
		case reflect.Bool:
			fs.BoolP(name, short, v.Field(i).Bool(), usage)
		case reflect.String:
			fs.StringP(name, short, v.Field(i).String(), usage)
		default:
			panic(fmt.Sprintf("config: unsupported flag type %s of field %s", field.Type, field.Name))
		}
	}
}

// Load fills cfg from its own defaults, CCHMOD_* environment variables,
// positional arguments and command line flags, in that order of precedence,
// and validates the result.
func Load(fs *pflag.FlagSet, args map[string]interface{}, cfg Validator) error {
	k := koanf.New(delim)

	if err := k.Load(structs.Provider(cfg, tagName), nil); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	err := k.Load(env.Provider(EnvPrefix, delim, func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return fmt.Errorf("failed to load environment: %w", err)
	}

	if len(args) > 0 {
		if err := k.Load(confmap.Provider(args, delim), nil); err != nil {
			return fmt.Errorf("failed to load arguments: %w", err)
		}
	}

	if err := k.Load(posflag.Provider(fs, delim, k), nil); err != nil {
		return fmt.Errorf("failed to load flags: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg.Validate()
}
