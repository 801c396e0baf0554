package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/polkiloo/foodfront/internal/domain/model"
)

const (
	configName = ".foodctl"
	envPrefix  = "FOODCTL"

	defaultAPIURL         = "http://localhost:8081/api"
	defaultEnv            = "production"
	defaultRequestTimeout = 15 * time.Second
)

// Settings is the persisted terminal client state.
type Settings struct {
	APIURL         string        `mapstructure:"api_url"`
	Env            string        `mapstructure:"env"`
	DevOrigin      string        `mapstructure:"dev_origin"`
	Token          string        `mapstructure:"token"`
	Role           model.Role    `mapstructure:"role"`
	Name           string        `mapstructure:"name"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("api_url", defaultAPIURL)
	v.SetDefault("env", defaultEnv)
	v.SetDefault("dev_origin", "")
	v.SetDefault("token", "")
	v.SetDefault("role", "")
	v.SetDefault("name", "")
	v.SetDefault("request_timeout", defaultRequestTimeout.String())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// readConfig points v at cfgFile, or $HOME/.foodctl.yaml, and reads it when present.
func readConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		v.SetConfigFile(filepath.Join(home, configName+".yaml"))
	}
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}

func loadSettings(v *viper.Viper) (*Settings, error) {
	var s Settings
	hook := viper.DecoderConfigOption(func(cfg *mapstructure.DecoderConfig) {
		cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			cfg.DecodeHook,
			mapstructure.StringToTimeDurationHookFunc(),
			stringToRoleHook(),
		)
	})
	if err := v.Unmarshal(&s, hook); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if s.RequestTimeout < 0 {
		s.RequestTimeout = 0
	}
	return &s, nil
}

// stringToRoleHook normalizes role names. An empty value stays empty so that a logged
// out client has no role.
func stringToRoleHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(model.Role("")) {
			return data, nil
		}
		raw, _ := data.(string)
		if strings.TrimSpace(raw) == "" {
			return model.Role(""), nil
		}
		role, ok := model.ParseRole(raw)
		if !ok {
			return nil, fmt.Errorf("unknown role %q", raw)
		}
		return role, nil
	}
}

// saveSession persists the principal, or clears it when token is empty.
func saveSession(v *viper.Viper, token string, role model.Role, name string) error {
	v.Set("token", token)
	v.Set("role", string(role))
	v.Set("name", name)
	path := v.ConfigFileUsed()
	if path == "" {
		return fmt.Errorf("no config file to write")
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
