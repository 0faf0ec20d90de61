package validator

import (
	"strings"
	"time"
)

// parseISO reads an ISO-8601 date with an optional time of day and offset.
//
// Dates: YYYY, YYYY-MM, YYYY-MM-DD, YYYYMMDD, YYYY-DDD, YYYYDDD, YYYY-Www,
// YYYY-Www-D, YYYYWww, YYYYWwwD. Times follow "T" (or a space): hh, hh:mm,
// hh:mm:ss, hhmm, hhmmss, with an optional "." or "," fraction on the last
// component. Offsets: Z, ±hh, ±hh:mm, ±hhmm. No offset means UTC.
func parseISO(s string) (time.Time, bool) {
	datePart, timePart, hasTime := s, "", false
	if i := strings.IndexAny(s, "Tt "); i >= 0 {
		datePart, timePart, hasTime = s[:i], s[i+1:], true
	}

	date, ok := parseISODate(datePart)
	if !ok {
		return time.Time{}, false
	}
	if !hasTime {
		return date, true
	}

	clock, loc, ok := parseISOTime(timePart)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(clock), true
}

func parseISODate(s string) (time.Time, bool) {
	if len(s) < 4 {
		return time.Time{}, false
	}
	year, ok := number(s[:4])
	if !ok {
		return time.Time{}, false
	}
	rest := s[4:]
	if rest == "" {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}

	extended := rest[0] == '-'
	if extended {
		rest = rest[1:]
	}

	switch {
	case strings.HasPrefix(rest, "W"):
		return weekDate(year, rest[1:], extended)
	case len(rest) == 3:
		return ordinalDate(year, rest)
	case extended && len(rest) == 2:
		return calendarDate(year, rest, "01")
	case extended && len(rest) == 5 && rest[2] == '-':
		return calendarDate(year, rest[:2], rest[3:])
	case !extended && len(rest) == 4:
		return calendarDate(year, rest[:2], rest[2:])
	}
	return time.Time{}, false
}

func calendarDate(year int, mm, dd string) (time.Time, bool) {
	month, ok1 := number(mm)
	day, ok2 := number(dd)
	if !ok1 || !ok2 || month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func ordinalDate(year int, ddd string) (time.Time, bool) {
	day, ok := number(ddd)
	if !ok || day < 1 || day > time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay() {
		return time.Time{}, false
	}
	return time.Date(year, time.January, day, 0, 0, 0, 0, time.UTC), true
}

// weekDate resolves "ww", "ww-D" (extended) or "ww", "wwD" (basic).
func weekDate(year int, s string, extended bool) (time.Time, bool) {
	if len(s) < 2 {
		return time.Time{}, false
	}
	week, ok := number(s[:2])
	if !ok || week < 1 {
		return time.Time{}, false
	}

	weekday := 1
	switch rest := s[2:]; {
	case rest == "":
	case extended && len(rest) == 2 && rest[0] == '-':
		weekday, ok = number(rest[1:])
	case !extended && len(rest) == 1:
		weekday, ok = number(rest)
	default:
		ok = false
	}
	if !ok || weekday < 1 || weekday > 7 {
		return time.Time{}, false
	}

	// Week 1 is the week holding January 4th; weeks start on Monday.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	t := monday.AddDate(0, 0, (week-1)*7+weekday-1)

	if y, w := t.ISOWeek(); y != year || w != week {
		return time.Time{}, false
	}
	return t, true
}

func parseISOTime(s string) (time.Duration, *time.Location, bool) {
	loc := time.UTC
	switch i := strings.LastIndexAny(s, "Zz+-"); {
	case i < 0:
	case i == len(s)-1 && (s[i] == 'Z' || s[i] == 'z'):
		s = s[:i]
	case s[i] == '+' || s[i] == '-':
		offset, ok := parseOffset(s[i+1:])
		if !ok {
			return 0, nil, false
		}
		if s[i] == '-' {
			offset = -offset
		}
		loc = time.FixedZone("", offset)
		s = s[:i]
	default:
		return 0, nil, false
	}

	var fraction string
	if i := strings.IndexAny(s, ".,"); i >= 0 {
		s, fraction = s[:i], s[i+1:]
		if fraction == "" {
			return 0, nil, false
		}
	}

	var parts []string
	if strings.Contains(s, ":") {
		parts = strings.Split(s, ":")
	} else {
		for len(s) >= 2 {
			parts, s = append(parts, s[:2]), s[2:]
		}
		if s != "" {
			return 0, nil, false
		}
	}
	if len(parts) == 0 || len(parts) > 3 {
		return 0, nil, false
	}

	units := []time.Duration{time.Hour, time.Minute, time.Second}
	limits := []int{23, 59, 59}
	var clock time.Duration
	for i, part := range parts {
		n, ok := number(part)
		if !ok || len(part) != 2 || n > limits[i] {
			return 0, nil, false
		}
		clock += time.Duration(n) * units[i]
	}

	if fraction != "" {
		nanos, ok := fractionNanos(fraction)
		if !ok {
			return 0, nil, false
		}
		// nanos billionths of the last unit, expressed in nanoseconds.
		clock += time.Duration(nanos) * (units[len(parts)-1] / time.Second)
	}
	return clock, loc, true
}

// parseOffset reads hh, hh:mm or hhmm and returns the offset in seconds.
func parseOffset(s string) (int, bool) {
	var hh, mm string
	switch {
	case len(s) == 2:
		hh, mm = s, "00"
	case len(s) == 5 && s[2] == ':':
		hh, mm = s[:2], s[3:]
	case len(s) == 4:
		hh, mm = s[:2], s[2:]
	default:
		return 0, false
	}
	h, ok1 := number(hh)
	m, ok2 := number(mm)
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return 0, false
	}
	return h*3600 + m*60, true
}

// fractionNanos scales a decimal fraction to billionths, ignoring digits past
// the ninth.
func fractionNanos(digits string) (int, bool) {
	if _, ok := number(digits); !ok {
		return 0, false
	}
	digits = (digits + "000000000")[:9]
	n, _ := number(digits)
	return n, true
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// number parses a non-empty run of ASCII digits.
func number(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
