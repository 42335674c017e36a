// Package config loads daylist settings from .daylist.yaml, the environment
// (DAYLIST_*) and an optional .env file, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	FileName  = ".daylist"
	EnvPrefix = "DAYLIST"
)

// Config is the resolved configuration.
type Config struct {
	Theme    string
	NoColor  bool
	Store    StoreConfig
	Greeting GreetingConfig
	Server   ServerConfig
	File     string // file actually read, empty when running on defaults
}

type StoreConfig struct {
	Driver string // json | sqlite
	Path   string
}

type GreetingConfig struct {
	Timezone string // IANA zone, empty for local time
}

type ServerConfig struct {
	Addr string
}

// Defaults returns a Config populated with the built-in defaults.
func Defaults() Config {
	return Config{
		Theme: "classic",
		Store: StoreConfig{Driver: "json"},
		Server: ServerConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// NewViper returns a viper instance with defaults and env binding set up.
// explicitFile, when non-empty, replaces the search for .daylist.yaml.
func NewViper(explicitFile string) *viper.Viper {
	def := Defaults()
	v := viper.New()
	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("theme", def.Theme)
	v.SetDefault("no_color", def.NoColor)
	v.SetDefault("store.driver", def.Store.Driver)
	v.SetDefault("store.path", def.Store.Path)
	v.SetDefault("greeting.timezone", def.Greeting.Timezone)
	v.SetDefault("server.addr", def.Server.Addr)
	return v
}

// Load reads an optional .env file and then the config file into v.
// A missing config file is not an error; a malformed one is.
func Load(v *viper.Viper) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		Theme:   v.GetString("theme"),
		NoColor: v.GetBool("no_color"),
		Store: StoreConfig{
			Driver: v.GetString("store.driver"),
			Path:   v.GetString("store.path"),
		},
		Greeting: GreetingConfig{Timezone: v.GetString("greeting.timezone")},
		Server:   ServerConfig{Addr: v.GetString("server.addr")},
		File:     v.ConfigFileUsed(),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no component can work with.
func (c Config) Validate() error {
	switch strings.ToLower(c.Store.Driver) {
	case "json", "sqlite":
	default:
		return fmt.Errorf("store.driver must be json or sqlite, got %q", c.Store.Driver)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme must be classic, neon or mono, got %q", c.Theme)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is empty")
	}
	return nil
}
