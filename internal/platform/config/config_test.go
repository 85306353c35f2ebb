package config

import (
	"testing"
	"time"

	kit "tallybook/internal/platform/testkit"
)

func TestPrefix(t *testing.T) {
	api := New().Prefix("TALLY_").Prefix("API_")
	if got := api.key("PORT"); got != "TALLY_API_PORT" {
		t.Fatalf("key() = %q", got)
	}
}

func TestMust(t *testing.T) {
	c := New().Prefix("TALLY_T_")
	t.Setenv("TALLY_T_NAME", "  tallybook ")
	t.Setenv("TALLY_T_SIZE", " 8 ")
	t.Setenv("TALLY_T_PORT", "4000")
	t.Setenv("TALLY_T_BAD", "x")
	t.Setenv("TALLY_T_OOB", "70000")

	if got := c.MustString("NAME"); got != "tallybook" {
		t.Fatalf("MustString = %q", got)
	}
	if got := c.MustInt("SIZE"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q", got)
	}

	kit.MustPanic(t, func() { c.MustString("MISSING") })
	kit.MustPanic(t, func() { c.MustInt("BAD") })
	kit.MustPanic(t, func() { c.MustPort("BAD") })
	kit.MustPanic(t, func() { c.MustPort("OOB") })

	c.Require("NAME", "PORT")
	kit.MustPanic(t, func() { c.Require("NAME", "MISSING") })
}

func TestMay(t *testing.T) {
	c := New().Prefix("TALLY_M_")
	t.Setenv("TALLY_M_STYLE", " %h:%m ")
	t.Setenv("TALLY_M_CACHE", "64")
	t.Setenv("TALLY_M_CACHE_BAD", "lots")
	t.Setenv("TALLY_M_SWAGGER", "true")
	t.Setenv("TALLY_M_SWAGGER_BAD", "maybe")
	t.Setenv("TALLY_M_SLOW", "250ms")
	t.Setenv("TALLY_M_SLOW_BAD", "soon")
	t.Setenv("TALLY_M_ORIGINS", " https://a.example , ,https://b.example ")
	t.Setenv("TALLY_M_ORIGINS_BLANK", " , ")

	if got := c.MayString("STYLE", "x"); got != "%h:%m" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q", got)
	}
	if c.MayInt("CACHE", 1) != 64 || c.MayInt("CACHE_BAD", 1) != 1 || c.MayInt("MISSING", 2) != 2 {
		t.Fatalf("MayInt mismatch")
	}
	if !c.MayBool("SWAGGER", false) || c.MayBool("SWAGGER_BAD", false) || !c.MayBool("MISSING", true) {
		t.Fatalf("MayBool mismatch")
	}
	if c.MayDuration("SLOW", time.Second) != 250*time.Millisecond || c.MayDuration("SLOW_BAD", time.Second) != time.Second {
		t.Fatalf("MayDuration mismatch")
	}

	got := c.MayCSV("ORIGINS", nil)
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("MayCSV = %#v", got)
	}
	if def := c.MayCSV("ORIGINS_BLANK", []string{"*"}); len(def) != 1 || def[0] != "*" {
		t.Fatalf("MayCSV blank = %#v", def)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("TALLY_E_")
	if got := c.MayEnum("MODE", "colon", "colon", "decimal"); got != "colon" {
		t.Fatalf("default = %q", got)
	}
	t.Setenv("TALLY_E_MODE", "DECIMAL")
	if got := c.MayEnum("MODE", "colon", "colon", "decimal"); got != "decimal" {
		t.Fatalf("case-insensitive match = %q", got)
	}
	t.Setenv("TALLY_E_MODE", "roman")
	kit.MustPanic(t, func() { c.MayEnum("MODE", "colon", "colon", "decimal") })
}
