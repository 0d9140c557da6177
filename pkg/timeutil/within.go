// Package timeutil turns relative windows such as "2w" or "-3d" into picker
// bounds.
package timeutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var errEmptyWindow = errors.New("window required")

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	// Bounds are aligned to whole minutes, so there are no second units.
	unitMap = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
		"w":       7 * 24 * time.Hour,
		"wk":      7 * 24 * time.Hour,
		"wks":     7 * 24 * time.Hour,
		"week":    7 * 24 * time.Hour,
		"weeks":   7 * 24 * time.Hour,
	}
)

// Within turns a signed window such as "2w" or "-3d" into bounds anchored at
// now. A positive window ends in the future, a negative one starts in the
// past.
func Within(now time.Time, input string) (min, max time.Time, err error) {
	trimmed := strings.TrimSpace(input)
	past := strings.HasPrefix(trimmed, "-")
	trimmed = strings.TrimLeft(trimmed, "+-")

	d, err := parseWindow(trimmed)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if past {
		return now.Add(-d), now, nil
	}
	return now, now.Add(d), nil
}

// parseWindow reads segments like "1w2d6h30m" into a duration of at least
// one minute.
func parseWindow(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, errEmptyWindow
	}

	total := time.Duration(0)
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, errors.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.ParseInt(matches[1], 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid window value %q", matches[1])
		}
		base, ok := unitMap[matches[2]]
		if !ok {
			return 0, errors.Errorf("unsupported window unit %q", matches[2])
		}
		total += time.Duration(value) * base
		remaining = remaining[len(matches[0]):]
	}

	if total < time.Minute {
		return 0, errors.Errorf("window %q must be at least a minute", input)
	}
	return total, nil
}
