package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	maxWindowHours = 168 // one week
	maxResultsCap  = 250 // provider-side limit per page
)

// Runtime is the resolved configuration of one meetingbar invocation.
type Runtime struct {
	ConfigFile string

	// Calendars are the display names of the calendars to track. Empty means
	// every cycle renders "No upcoming events" until configured.
	Calendars []string

	// Account selects which stored Google token to use.
	Account string

	// CacheTimeout is the scheduling hint (seconds) stamped on every block,
	// and the tick interval of watch mode.
	CacheTimeout int

	// Window is how far ahead events are fetched.
	Window time.Duration

	// MaxResults caps the events fetched per calendar.
	MaxResults int64

	UrgentMinutes float64
	SoonMinutes   float64
	UrgentColor   string
	SoonColor     string

	// StrictCalendars errors on configured names with no matching calendar.
	StrictCalendars bool

	// AllowPartial keeps a cycle alive when a single calendar fetch fails.
	AllowPartial bool

	// ForceUTC ignores provider event timezones.
	ForceUTC bool

	LogLevel string
}

// Load reads configuration from the given file (or the default location
// under XDG_CONFIG_HOME) and the MEETINGBAR_* environment, applying defaults
// and clamping values to sane ranges.
func Load(configFile string) (Runtime, error) {
	v := viper.New()
	v.SetEnvPrefix("MEETINGBAR")
	v.AutomaticEnv()

	v.SetDefault("calendars", []string{})
	v.SetDefault("account", "default")
	v.SetDefault("cache_timeout", 60)
	v.SetDefault("window_hours", 24)
	v.SetDefault("max_results", 10)
	v.SetDefault("urgent_minutes", 20)
	v.SetDefault("soon_minutes", 120)
	v.SetDefault("urgent_color", "#FF0000")
	v.SetDefault("soon_color", "#FFFF00")
	v.SetDefault("strict_calendars", false)
	v.SetDefault("allow_partial", false)
	v.SetDefault("force_utc", false)
	v.SetDefault("log_level", "warn")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Runtime{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(defaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			// A missing default config is fine; everything has defaults.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Runtime{}, fmt.Errorf("read config: %w", err)
			}
		}
		configFile = v.ConfigFileUsed()
	}

	cacheTimeout := v.GetInt("cache_timeout")
	if cacheTimeout < 1 {
		cacheTimeout = 60
	}

	windowHours := v.GetInt("window_hours")
	if windowHours < 1 {
		windowHours = 24
	}
	if windowHours > maxWindowHours {
		windowHours = maxWindowHours
	}

	maxResults := v.GetInt64("max_results")
	if maxResults < 1 {
		maxResults = 10
	}
	if maxResults > maxResultsCap {
		maxResults = maxResultsCap
	}

	account := strings.TrimSpace(v.GetString("account"))
	if account == "" {
		account = "default"
	}

	return Runtime{
		ConfigFile:      configFile,
		Calendars:       splitCalendars(v.GetStringSlice("calendars")),
		Account:         account,
		CacheTimeout:    cacheTimeout,
		Window:          time.Duration(windowHours) * time.Hour,
		MaxResults:      maxResults,
		UrgentMinutes:   v.GetFloat64("urgent_minutes"),
		SoonMinutes:     v.GetFloat64("soon_minutes"),
		UrgentColor:     v.GetString("urgent_color"),
		SoonColor:       v.GetString("soon_color"),
		StrictCalendars: v.GetBool("strict_calendars"),
		AllowPartial:    v.GetBool("allow_partial"),
		ForceUTC:        v.GetBool("force_utc"),
		LogLevel:        v.GetString("log_level"),
	}, nil
}

// splitCalendars also accepts a single comma-separated entry, the form the
// MEETINGBAR_CALENDARS environment variable arrives in.
func splitCalendars(entries []string) []string {
	var names []string
	for _, entry := range entries {
		for _, name := range strings.Split(entry, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func defaultConfigDir() string {
	xdgConfig := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "meetingbar")
}
