package validator

import "time"

const dateLayout = "2006-01-02"

// Date accepts a time.Time or an ISO-8601 string (calendar, ordinal or week
// date, basic or extended format) and returns the calendar date as
// YYYY-MM-DD. The date is taken in the value's own offset, so
// "2024-03-01T23:30:00-05:00" yields "2024-03-01".
func Date(value any) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return v.Format(dateLayout), nil
	case string:
		t, ok := parseISO(v)
		if !ok {
			return "", fail(MsgInvalidDate, value)
		}
		return t.Format(dateLayout), nil
	default:
		return "", fail(MsgInvalidDate, value)
	}
}

// Timestamp returns a time.Time unchanged and parses ISO-8601 strings,
// keeping any embedded offset. Strings without an offset are read as UTC and
// missing components default to their minimum, so "2024-03" is
// 2024-03-01T00:00:00Z.
func Timestamp(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		t, ok := parseISO(v)
		if !ok {
			return time.Time{}, fail(MsgInvalidTime, value)
		}
		return t, nil
	default:
		return time.Time{}, fail(MsgInvalidTime, value)
	}
}
