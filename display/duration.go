package display

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Placeholder is shown wherever a backend field is missing or unreadable.
const Placeholder = "N/A"

var (
	isoDuration   = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:\d+(?:\.\d+)?S)?)?$`)
	humanDuration = regexp.MustCompile(`^(?:(\d+)\s*h)?\s*(?:(\d+)\s*m)?$`)
)

// FormatDuration turns an ISO-8601 duration ("PT2H30M") or already human text
// ("2h 30m") into "2h 30m", or "2h" when there are no minutes. A day part is
// folded into hours. Anything else yields Placeholder.
func FormatDuration(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}

	if m := isoDuration.FindStringSubmatch(strings.ToUpper(s)); m != nil {
		if m[1] == "" && m[2] == "" && m[3] == "" {
			return Placeholder
		}
		n, ok := atoiAll(m[1], m[2], m[3])
		if !ok || n[0] > math.MaxInt32/24 {
			return Placeholder
		}
		return render(n[0]*24+n[1], n[2], m[1] != "" || m[2] != "")
	}

	if m := humanDuration.FindStringSubmatch(strings.ToLower(s)); m != nil {
		if m[1] == "" && m[2] == "" {
			return Placeholder
		}
		n, ok := atoiAll(m[1], m[2])
		if !ok {
			return Placeholder
		}
		return render(n[0], n[1], m[1] != "")
	}

	return Placeholder
}

// atoiAll parses every non-empty capture; empty ones count as zero.
func atoiAll(parts ...string) ([]int, bool) {
	out := make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n > math.MaxInt32 {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// FormatMinutes renders a minute count the way FormatDuration renders durations.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		return Placeholder
	}
	h, m := minutes/60, minutes%60
	return render(h, m, h > 0)
}

func render(hours, mins int, withHours bool) string {
	switch {
	case !withHours:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}
