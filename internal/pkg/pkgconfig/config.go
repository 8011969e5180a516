package pkgconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	Close() error
}

type Viper struct {
	v *viper.Viper
}

func NewViper(path string) (*Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return &Viper{v: v}, nil
}

// NewViperDefaults builds a config without a backing file. Values come from
// the given defaults and the environment only.
func NewViperDefaults(defaults map[string]any) *Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return &Viper{v: v}
}

// Set overrides a key above the file, the environment and the defaults.
func (c *Viper) Set(key string, value any) { c.v.Set(key, value) }

func (c *Viper) GetString(key string) string { return c.v.GetString(key) }

func (c *Viper) GetInt(key string) int { return c.v.GetInt(key) }

func (c *Viper) GetBool(key string) bool { return c.v.GetBool(key) }

func (c *Viper) GetDuration(key string) time.Duration { return c.v.GetDuration(key) }

func (c *Viper) Close() error { return nil }
