// Package duration converts between elapsed seconds and the duration notations
// people type into timesheets
//
// Three input notations are accepted
//   - colon    [-]H:MM[:SS]      "1:30", "-0:45", "2:05:30"
//   - decimal  hours as a number "1.5", "1,5", "90"
//   - natural  {count}{unit}...  "2h30m", "45m", "1d"
//
// Output is always the colon family rendered through a style template
package duration

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"tallybook/internal/core/codecerr"

	"golang.org/x/text/cases"
)

// Mode selects the notation Parse expects
type Mode string

const (
	// ModeColon is [-]H:MM[:SS]
	ModeColon Mode = "colon"
	// ModeNatural is a sequence of {count}{unit} pairs
	ModeNatural Mode = "natural"
	// ModeDecimal is a decimal number of hours, comma or dot separated
	ModeDecimal Mode = "decimal"
)

// DefaultStyle renders hours and zero padded minutes
const DefaultStyle = "%h:%m"

// Modes lists the supported notations in detection order
func Modes() []Mode { return []Mode{ModeColon, ModeDecimal, ModeNatural} }

// numeric matches what counts as a plain number (sign, digits, fraction, exponent)
var numeric = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Format renders seconds through style, substituting %h and %m
// durations of a minute or more below zero get a leading minus; shorter negative
// durations render without a sign, matching data produced by earlier releases
func Format(seconds int64, style string) string {
	if style == "" {
		style = DefaultStyle
	}
	// uint64 holds the magnitude of math.MinInt64
	abs := uint64(seconds)
	if seconds < 0 {
		abs = -abs
	}
	hour := abs / 3600
	minute := (abs / 60) % 60

	mm := strconv.FormatUint(minute, 10)
	if minute < 10 {
		mm = "0" + mm
	}
	out := strings.NewReplacer("%h", strconv.FormatUint(hour, 10), "%m", mm).Replace(style)
	if seconds <= -60 {
		return "-" + out
	}
	return out
}

// FormatNullable is Format for optional values, nil in gives nil out
func FormatNullable(seconds *int64, style string) *string {
	if seconds == nil {
		return nil
	}
	s := Format(*seconds, style)
	return &s
}

// Detect reports which notation ParseString would use for input
func Detect(input string) Mode {
	switch {
	case strings.Contains(input, ":"):
		return ModeColon
	case strings.ContainsAny(input, ".,") || isNumeric(input):
		return ModeDecimal
	default:
		return ModeNatural
	}
}

// ParseString parses input after detecting its notation
func ParseString(input string) (int64, error) {
	return Parse(input, Detect(input))
}

// Parse parses input in the given notation
// the empty string is zero in every mode. Colon minute and second parts must be
// digits but their width is not checked, so "0:90" is 5400 seconds
func Parse(input string, mode Mode) (int64, error) {
	switch mode {
	case ModeColon, ModeNatural, ModeDecimal:
	default:
		return 0, codecerr.Format("duration", string(mode), "unknown mode")
	}
	if input == "" {
		return 0, nil
	}
	switch mode {
	case ModeColon:
		return parseColon(input)
	case ModeNatural:
		return parseNatural(input)
	default:
		return parseDecimal(input)
	}
}

func parseColon(input string) (int64, error) {
	parts := strings.Split(input, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, codecerr.Format("duration", input, "colon format needs 2 or 3 parts")
	}
	for _, p := range parts {
		if p == "" {
			return 0, codecerr.Format("duration", input, "empty colon part")
		}
	}
	for _, p := range parts[1:] {
		if p[0] == '-' {
			return 0, codecerr.Format("duration", p, "only the whole duration may be negative")
		}
		if !isDigits(p) {
			return 0, codecerr.Format("duration", p, "not a number")
		}
	}

	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, codecerr.Format("duration", parts[0], "not a number")
	}
	if hours < 0 {
		hours = -hours
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, codecerr.Format("duration", parts[1], "not a number")
	}
	var secs int64
	if len(parts) == 3 {
		if secs, err = strconv.ParseInt(parts[2], 10, 64); err != nil {
			return 0, codecerr.Format("duration", parts[2], "not a number")
		}
	}

	if minutes > (math.MaxInt64-secs)/60 {
		return 0, codecerr.Format("duration", input, "out of range")
	}
	rest := minutes*60 + secs
	if hours > (math.MaxInt64-rest)/3600 {
		return 0, codecerr.Format("duration", input, "out of range")
	}
	total := hours*3600 + rest
	if input[0] == '-' {
		total = -total
	}
	return total, nil
}

func parseDecimal(input string) (int64, error) {
	s := strings.TrimSpace(strings.ReplaceAll(input, ",", "."))
	if !numeric.MatchString(s) {
		return 0, codecerr.Format("duration", input, "not a decimal number")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, codecerr.Format("duration", input, "not a decimal number")
	}
	secs := f * 3600
	if secs >= math.MaxInt64 || secs <= math.MinInt64 {
		return 0, codecerr.Format("duration", input, "out of range")
	}
	return int64(secs), nil
}

// naturalUnits is ordered from the largest unit down; pairs must follow this order
var naturalUnits = []struct {
	names   []string
	seconds int64
}{
	{[]string{"y"}, 365 * 86400},
	{[]string{"w"}, 7 * 86400},
	{[]string{"d"}, 86400},
	{[]string{"h"}, 3600},
	{[]string{"m", "min", "i"}, 60},
	{[]string{"s"}, 1},
}

func unitRank(name string) int {
	for i, u := range naturalUnits {
		for _, n := range u.names {
			if n == name {
				return i
			}
		}
	}
	return -1
}

func parseNatural(input string) (int64, error) {
	s := strings.TrimSpace(cases.Fold().String(input))
	s = strings.TrimPrefix(s, "pt")
	if s == "" {
		return 0, codecerr.Format("duration", input, "missing count and unit")
	}

	var total int64
	last := -1
	for i := 0; i < len(s); {
		if s[i] == ' ' {
			i++
			continue
		}
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return 0, codecerr.Format("duration", s[start:], "expected a count")
		}
		count, err := strconv.ParseInt(s[start:i], 10, 64)
		if err != nil {
			return 0, codecerr.Format("duration", s[start:i], "count out of range")
		}

		ustart := i
		for i < len(s) && s[i] >= 'a' && s[i] <= 'z' {
			i++
		}
		unit := s[ustart:i]
		if unit == "" {
			return 0, codecerr.Format("duration", s[start:], "missing unit")
		}
		rank := unitRank(unit)
		if rank < 0 {
			return 0, codecerr.Format("duration", unit, "unknown unit")
		}
		if rank <= last {
			return 0, codecerr.Format("duration", s[start:i], "units must appear once, largest first")
		}
		last = rank

		size := naturalUnits[rank].seconds
		if count > (math.MaxInt64-total)/size {
			return 0, codecerr.Format("duration", input, "out of range")
		}
		total += count * size
	}
	return total, nil
}

func isNumeric(s string) bool { return numeric.MatchString(strings.TrimSpace(s)) }

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
