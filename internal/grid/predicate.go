package grid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Relative date buckets accepted by DateBucket predicates. The enumeration is
// closed: passing any other literal is a caller bug, not bad data, and panics.
const (
	BucketToday     = "today"
	BucketYesterday = "yesterday"
	BucketWeek      = "week"
	BucketMonth     = "month"
)

// timeNow is swapped out by tests that need a fixed "now".
var timeNow = time.Now

// NumberRange builds a predicate matching numeric values against a range
// filter. The filter value is either a plain number (values >= number pass) or
// a "min-max" / "min-" form. A filter whose min half does not parse rejects
// every row, as does a present-but-unparseable max half. Non-numeric row
// values are rejected.
func NumberRange[T any](accessor func(row T) any) Predicate[T] {
	return func(row T, filterValue string) bool {
		if filterValue == "" {
			return true
		}

		minVal, maxVal, hasMax, ok := parseRangeFilter(filterValue)
		if !ok {
			return false
		}

		value, ok := numericValue(accessor(row))
		if !ok {
			return false
		}

		if value < minVal {
			return false
		}
		if hasMax && value > maxVal {
			return false
		}
		return true
	}
}

// DateBucket builds a predicate matching date values against a relative
// calendar bucket computed at evaluation time. Row values may be native times
// or ISO-8601 strings; unparseable values reject the row. Both bucket bounds
// are inclusive and weeks start on Monday.
func DateBucket[T any](accessor func(row T) any) Predicate[T] {
	return func(row T, filterValue string) bool {
		if filterValue == "" {
			return true
		}

		start, end := bucketInterval(filterValue, timeNow())

		value, ok := timeValue(accessor(row))
		if !ok {
			return false
		}

		return !value.Before(start) && !value.After(end)
	}
}

func parseRangeFilter(filterValue string) (minVal, maxVal float64, hasMax, ok bool) {
	trimmed := strings.TrimSpace(filterValue)
	if trimmed == "" {
		return 0, 0, false, false
	}

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return v, 0, false, true
	}

	idx := strings.Index(trimmed, "-")
	if idx < 0 {
		return 0, 0, false, false
	}

	minPart := strings.TrimSpace(trimmed[:idx])
	maxPart := strings.TrimSpace(trimmed[idx+1:])

	minVal, err := strconv.ParseFloat(minPart, 64)
	if err != nil {
		return 0, 0, false, false
	}

	if maxPart == "" {
		return minVal, 0, false, true
	}

	maxVal, err = strconv.ParseFloat(maxPart, 64)
	if err != nil {
		return 0, 0, false, false
	}

	return minVal, maxVal, true, true
}

// bucketInterval resolves a bucket literal into its inclusive [start, end]
// interval relative to now. Unknown literals indicate a caller/config bug and
// panic rather than silently matching everything.
func bucketInterval(bucket string, now time.Time) (time.Time, time.Time) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch bucket {
	case BucketToday:
		return dayStart, endOfDay(dayStart)
	case BucketYesterday:
		start := dayStart.AddDate(0, 0, -1)
		return start, endOfDay(start)
	case BucketWeek:
		// Monday is the first day of the week.
		offset := (int(now.Weekday()) + 6) % 7
		start := dayStart.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	case BucketMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	default:
		panic(fmt.Sprintf("grid: unknown relative date bucket %q", bucket))
	}
}

func endOfDay(dayStart time.Time) time.Time {
	return dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case decimal.Decimal:
		return v.InexactFloat64(), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// timeValue accepts native time values and common string encodings, trying a
// strict ISO-8601 parse before the more tolerant layouts.
func timeValue(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		return parseTimeString(v)
	default:
		return time.Time{}, false
	}
}

var fallbackTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123,
	time.RFC822,
}

func parseTimeString(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}

	if t, err := time.Parse(time.RFC3339Nano, trimmed); err == nil {
		return t, true
	}

	for _, layout := range fallbackTimeLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
