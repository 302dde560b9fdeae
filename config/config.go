// Package config registers every setting of ava with its default and loads
// overrides from ava.toml and AVA_* environment variables through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/ava-cli/ava/constant"
	"github.com/ava-cli/ava/filesystem"
	"github.com/ava-cli/ava/icon"
	"github.com/ava-cli/ava/key"
	"github.com/ava-cli/ava/media"
	"github.com/ava-cli/ava/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns a key such as player.plays_inline into the PLAYER_PLAYS_INLINE part of its variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup applies the defaults, binds the environment and reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Ava)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Ava)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// choices lists the accepted values of keys limited to a fixed set. An empty
// string leaves the option to the engine.
var choices = map[string][]string{
	key.PlayerPreload: {"", string(media.PreloadNone), string(media.PreloadMetadata), string(media.PreloadAuto)},
	key.PlayerCrossOrigin: {"", string(media.CrossOriginAnonymous), string(media.CrossOriginUseCredentials)},
	key.IconsVariant:      icon.AvailableVariants(),
	key.LogsLevel:         {"panic", "fatal", "error", "warn", "info", "debug", "trace"},
}

// Choices returns the accepted values of k, if it is limited to a fixed set.
func Choices(k string) ([]string, bool) {
	c, ok := choices[k]
	return c, ok
}

// Validate rejects values a key does not accept.
func Validate(k string, value any) error {
	allowed, ok := choices[k]
	if !ok {
		return nil
	}

	s, _ := value.(string)
	if !lo.Contains(allowed, s) {
		return fmt.Errorf("invalid value %q for %s, expected one of: %s", s, k, strings.Join(lo.Compact(allowed), ", "))
	}
	return nil
}
