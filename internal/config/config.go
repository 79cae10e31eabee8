// Package config loads the planefence configuration: environment variables
// first, then $PLANEFENCEDIR/planefence.config (KEY=VALUE lines, '#'
// comments) on top.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	defaultPlaneFile     = "/usr/share/planefence/persist/.internal/plane-alert-db.txt"
	defaultPlanefenceDir = "/usr/share/planefence"
)

// envKeys are the only environment variables the config reads. Everything
// else in the environment is noise.
var envKeys = map[string]struct{}{
	"PLANEFILE":           {},
	"PA_DISCORD_WEBHOOKS": {},
	"PF_DISCORD_WEBHOOKS": {},
	"DISCORD_FEEDER_NAME": {},
	"DISCORD_MEDIA":       {},
	"PF_ALTUNIT":          {},
	"PF_DISTUNIT":         {},
	"PF_ELEVATION":        {},
}

type AppConfig struct {
	k *koanf.Koanf
}

func NewAppConfig() *AppConfig {
	c := &AppConfig{k: koanf.New(".")}

	c.k.Set("PLANEFILE", defaultPlaneFile)

	return c
}

// Load populates the config. Values from the config file win over values
// from the environment. A missing config file is fine, a broken one is not.
func (c *AppConfig) Load() error {
	if err := c.k.Load(env.Provider("", ".", func(s string) string {
		if _, ok := envKeys[s]; ok {
			return s
		}

		return ""
	}), nil); err != nil {
		return err
	}

	path := ConfigPath()

	if _, err := os.Stat(path); err != nil {
		slog.Debug("no config file at " + path)

		return nil
	}

	if err := c.k.Load(file.Provider(path), dotenv.Parser()); err != nil {
		return fmt.Errorf("error loading config %s: %w", path, err)
	}

	return nil
}

// ConfigPath returns the planefence.config location, honoring PLANEFENCEDIR.
func ConfigPath() string {
	dir := os.Getenv("PLANEFENCEDIR")
	if dir == "" {
		dir = defaultPlanefenceDir
	}

	return dir + "/planefence.config"
}

func (c *AppConfig) PlaneFile() string {
	return c.k.String("PLANEFILE")
}

func (c *AppConfig) FeederName() string {
	return c.k.String("DISCORD_FEEDER_NAME")
}

func (c *AppConfig) Media() string {
	return c.k.String("DISCORD_MEDIA")
}

// Webhooks returns the delivery URLs for a subsystem ("PA" or "PF"). The
// raw value is a comma-separated list.
func (c *AppConfig) Webhooks(subsystem string) []string {
	raw := c.k.String(strings.ToUpper(subsystem) + "_DISCORD_WEBHOOKS")

	urls := make([]string, 0)

	for _, u := range strings.Split(raw, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}

	return urls
}

func (c *AppConfig) AltUnit() string {
	return c.k.String("PF_ALTUNIT")
}

func (c *AppConfig) DistUnit() string {
	return c.k.String("PF_DISTUNIT")
}

// Elevation is the feeder antenna elevation. Non-numeric values read as 0,
// matching how the rest of the planefence tooling treats them.
func (c *AppConfig) Elevation() int {
	n, err := strconv.Atoi(c.k.String("PF_ELEVATION"))
	if err != nil {
		return 0
	}

	return n
}

func (c *AppConfig) Set(key string, v any) error {
	return c.k.Set(key, v)
}
