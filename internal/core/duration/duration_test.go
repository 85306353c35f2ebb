package duration

import (
	"math"
	"testing"

	"tallybook/internal/core/codecerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds int64
		style   string
		want    string
	}{
		{name: "zero", seconds: 0, want: "0:00"},
		{name: "hour and a half", seconds: 5400, want: "1:30"},
		{name: "seconds are dropped", seconds: 5459, want: "1:30"},
		{name: "hours are not padded", seconds: 100*3600 + 5*60, want: "100:05"},
		{name: "negative", seconds: -5400, want: "-1:30"},
		{name: "negative one minute", seconds: -60, want: "-0:01"},
		{name: "sub minute negative has no sign", seconds: -30, want: "0:00"},
		{name: "sub minute negative edge", seconds: -59, want: "0:00"},
		{name: "custom style", seconds: 5400, style: "%hh %mm", want: "1h 30m"},
		{name: "style without placeholders", seconds: 5400, style: "n/a", want: "n/a"},
		{name: "minutes only style", seconds: 3599, style: "%m", want: "59"},
		{name: "most negative", seconds: math.MinInt64, want: "-2562047788015215:30"},
		{name: "most positive", seconds: math.MaxInt64, want: "2562047788015215:30"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Format(tc.seconds, tc.style))
		})
	}
}

func TestFormat_NegativeSignNeverAppearsBelowAMinute(t *testing.T) {
	t.Parallel()

	for s := int64(-59); s < 0; s++ {
		assert.NotContains(t, Format(s, ""), "-", "seconds=%d", s)
	}
}

func TestFormatNullable(t *testing.T) {
	t.Parallel()

	assert.Nil(t, FormatNullable(nil, DefaultStyle))

	v := int64(-5400)
	got := FormatNullable(&v, DefaultStyle)
	require.NotNil(t, got)
	assert.Equal(t, "-1:30", *got)
}

func TestParse_Colon(t *testing.T) {
	t.Parallel()

	ok := map[string]int64{
		"1:30":     5400,
		"-1:30":    -5400,
		"1:30:15":  5415,
		"-1:30:15": -5415,
		"0:90":     5400,
		"-0:30":    -1800,
		"10:00":    36000,
		"00:01":    60,
	}
	for in, want := range ok {
		got, err := Parse(in, ModeColon)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	bad := []string{"1", "1::30", "1:-30:00", ":30", "1:30:", "1:2:3:4", "a:30", "1:3a", "1:+30"}
	for _, in := range bad {
		_, err := Parse(in, ModeColon)
		require.Error(t, err, in)
		assert.True(t, codecerr.IsFormat(err), "want FormatError for %q, got %v", in, err)
	}
}

func TestParse_ColonErrorCarriesFragment(t *testing.T) {
	t.Parallel()

	_, err := Parse("1:-30:00", ModeColon)
	fe, ok := codecerr.AsFormat(err)
	require.True(t, ok)
	assert.Equal(t, "-30", fe.Input)
}

func TestParse_Decimal(t *testing.T) {
	t.Parallel()

	ok := map[string]int64{
		"1,5":  5400,
		"1.5":  5400,
		"90":   324000,
		"-1.5": -5400,
		".5":   1800,
		"0.25": 900,
		"1e0":  3600,
	}
	for in, want := range ok {
		got, err := Parse(in, ModeDecimal)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"abc", "1.5h", "1,5,5", "NaN", "Inf", "1e400"} {
		_, err := Parse(in, ModeDecimal)
		assert.True(t, codecerr.IsFormat(err), "want FormatError for %q, got %v", in, err)
	}
}

func TestParse_Natural(t *testing.T) {
	t.Parallel()

	ok := map[string]int64{
		"2h30m":  9000,
		"45m":    2700,
		"2h":     7200,
		"1H30M":  5400,
		"30min":  1800,
		"15i":    900,
		"90s":    90,
		"1d":     86400,
		"1w2d":   9 * 86400,
		"1y":     365 * 86400,
		"1h 30m": 5400,
		"PT2H":   7200,
	}
	for in, want := range ok {
		got, err := Parse(in, ModeNatural)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"30m2h", "2h2h", "h", "2", "2x", "-2h", "2h-30m", "pt"} {
		_, err := Parse(in, ModeNatural)
		assert.True(t, codecerr.IsFormat(err), "want FormatError for %q, got %v", in, err)
	}
}

func TestParse_EmptyIsZeroInEveryMode(t *testing.T) {
	t.Parallel()

	for _, m := range Modes() {
		got, err := Parse("", m)
		require.NoError(t, err, m)
		assert.Zero(t, got, m)
	}
}

func TestParse_UnknownMode(t *testing.T) {
	t.Parallel()

	_, err := Parse("1:30", Mode("roman"))
	require.Error(t, err)
	assert.True(t, codecerr.IsFormat(err))

	_, err = Parse("", Mode("roman"))
	assert.True(t, codecerr.IsFormat(err))
}

func TestDetect(t *testing.T) {
	t.Parallel()

	cases := map[string]Mode{
		"1:30":  ModeColon,
		"1.5:3": ModeColon,
		"1,5":   ModeDecimal,
		"1.5":   ModeDecimal,
		"90":    ModeDecimal,
		"-2":    ModeDecimal,
		"2h30m": ModeNatural,
		"":      ModeNatural,
	}
	for in, want := range cases {
		assert.Equal(t, want, Detect(in), in)
	}
}

func TestParseString(t *testing.T) {
	t.Parallel()

	cases := map[string]int64{
		"-1:30": -5400,
		"1,5":   5400,
		"1.5":   5400,
		"90":    324000,
		"2h":    7200,
		"":      0,
	}
	for in, want := range cases {
		got, err := ParseString(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseString("1::30")
	assert.True(t, codecerr.IsFormat(err))
}

func TestRoundTrip_ColonWholeMinutes(t *testing.T) {
	t.Parallel()

	for s := int64(0); s < 360000; s += 60 {
		got, err := Parse(Format(s, DefaultStyle), ModeColon)
		require.NoError(t, err)
		if got != s {
			t.Fatalf("round trip %d -> %q -> %d", s, Format(s, DefaultStyle), got)
		}
	}
}

func TestRoundTrip_NegativeWholeMinutes(t *testing.T) {
	t.Parallel()

	for _, s := range []int64{-60, -5400, -360000 + 60} {
		got, err := ParseString(Format(s, DefaultStyle))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
