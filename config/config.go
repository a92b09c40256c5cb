// Package config holds the façade's own settings. They are read from the
// environment on first use; an optional settings file can override them.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

// Environment keys.
const (
	// DetectNameMismatchKey enables the caller/name mismatch diagnostic on
	// type-derived logger names.
	DetectNameMismatchKey = "LOGBIND_DETECT_NAME_MISMATCH"

	// PlatformVendorKey overrides the platform-vendor string used to detect
	// constrained platforms where candidate listing is skipped.
	PlatformVendorKey = "LOGBIND_PLATFORM_VENDOR"

	// DumpDroppedEventsKey enables the JSON dump of events that could not be
	// replayed.
	DumpDroppedEventsKey = "LOGBIND_DUMP_DROPPED_EVENTS"
)

// Settings are the façade's knobs. None of them change resolution semantics;
// they only control diagnostics and discovery short-cuts.
type Settings struct {
	// DetectNameMismatch reports when a type-derived logger name does not
	// match the calling package.
	DetectNameMismatch bool `mapstructure:"detect-name-mismatch" json:"detectNameMismatch" yaml:"detect-name-mismatch" default:"false"`

	// PlatformVendor identifies the platform vendor. Candidate listing is
	// skipped on constrained platforms that cannot enumerate registrations.
	PlatformVendor string `mapstructure:"platform-vendor" json:"platformVendor" yaml:"platform-vendor"`

	// DumpDroppedEvents writes dropped buffered events as JSON to the
	// diagnostic stream when replay is not possible.
	DumpDroppedEvents bool `mapstructure:"dump-dropped-events" json:"dumpDroppedEvents" yaml:"dump-dropped-events" default:"false"`
}

// ConstrainedPlatform reports whether the vendor string names a platform on
// which multiple registrations cannot be listed.
func (s Settings) ConstrainedPlatform() bool {
	return strings.Contains(strings.ToLower(s.PlatformVendor), "android")
}

// Validate implements the settings-file validation hook.
func (s Settings) Validate() error {
	if strings.ContainsAny(s.PlatformVendor, "\r\n") {
		return fmt.Errorf("platform-vendor must be a single line")
	}
	return nil
}

var (
	mu       sync.RWMutex
	current  Settings
	loadOnce sync.Once
)

// Current returns the active settings, reading the environment on first use.
func Current() Settings {
	loadOnce.Do(func() {
		mu.Lock()
		current = FromEnv()
		mu.Unlock()
	})

	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active settings. Used by the file loader and by tests.
func Set(s Settings) {
	loadOnce.Do(func() {})

	mu.Lock()
	defer mu.Unlock()
	current = s
}

// FromEnv builds Settings from the environment alone.
func FromEnv() Settings {
	return Settings{
		DetectNameMismatch: boolFromEnv(DetectNameMismatchKey),
		PlatformVendor:     os.Getenv(PlatformVendorKey),
		DumpDroppedEvents:  boolFromEnv(DumpDroppedEventsKey),
	}
}

// boolFromEnv parses a boolean environment value. Unset or unparsable values
// read as false; settings reads must never fail.
func boolFromEnv(key string) bool {
	v := os.Getenv(key)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
