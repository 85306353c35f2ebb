// Package config reads settings from the environment
// Must* getters panic through the logger when a value is missing or invalid,
// May* getters fall back to a default and warn on garbage
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"tallybook/internal/platform/logger"
)

// Conf is an env view scoped by prefix, e.g. New().Prefix("TALLY_API_")
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix returns a view with p appended to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

func (c Conf) fail(k, value, msg string) {
	ev := logger.Get().Panic().Str("key", c.key(k))
	if value != "" {
		ev = ev.Str("value", value)
	}
	ev.Msg(msg)
}

// MustString returns the value of key or panics when it is empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		c.fail(key, "", "missing required env")
	}
	return v
}

// MustInt is MustString parsed as an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		c.fail(key, s, "invalid int value")
	}
	return v
}

// MustPort validates a TCP port and returns it as a listen address ":N"
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	if p, err := strconv.Atoi(s); err != nil || p < 1 || p > 65535 {
		c.fail(key, s, "invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// Require panics on the first empty key
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if c.lookup(k) == "" {
			c.fail(k, "", "missing required env")
		}
	}
}

// MayString returns the value of key or def
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value of key as an int, def when empty or invalid
func (c Conf) MayInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayBool returns the value of key as a bool, def when empty or invalid
func (c Conf) MayBool(key string, def bool) bool {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration returns the value of key as a time.Duration ("250ms", "2s"),
// def when empty or invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayCSV splits a comma separated value, dropping blanks; def when nothing is left
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value of key or def; a value outside allowed panics
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
