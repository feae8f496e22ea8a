package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// R is one domain record as returned by the upstream API: a loosely-typed
// key/value bag with no fixed schema. Screens only rely on the fields their
// columns reference.
type R map[string]any

// Missing is the display sentinel for a field that is absent, nil, or empty
// on a record.
const Missing = "-"

// ID returns the record's id as a string. Upstream is inconsistent about
// whether ids arrive as JSON strings or numbers, so both are tolerated.
// Returns "" if no id field is present.
func (r R) ID() string {
	for _, key := range []string{"id", "Id", "ID"} {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch id := v.(type) {
		case string:
			return id
		case float64:
			return strconv.FormatInt(int64(id), 10)
		case int:
			return strconv.Itoa(id)
		case int64:
			return strconv.FormatInt(id, 10)
		default:
			return fmt.Sprintf("%v", id)
		}
	}
	return ""
}

// NumericID returns the id parsed as an integer, or 0 when the id does not
// parse. The zero fallback keeps non-numeric ids sorting together at the
// bottom of the id-descending base order.
func (r R) NumericID() int64 {
	id := strings.TrimSpace(r.ID())
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// AsString renders an arbitrary raw field value as a plain string.
// Returns "" for nil and for empty/whitespace-only strings.
func AsString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		// JSON numbers decode as float64; print integers without a decimal.
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// AsNumber parses a raw field value as a float. Strings are accepted after
// stripping currency symbols, commas, and whitespace, since the upstream API
// mixes numeric and pre-formatted string amounts.
func AsNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	case string:
		s := strings.TrimSpace(val)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimPrefix(s, "₱")
		s = strings.TrimPrefix(s, "$")
		if s == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// timeLayouts are tried in order when parsing date-like fields. The upstream
// API emits at least the first three; the rest show up in older rows.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// AsTime parses a raw field value as a timestamp. Numeric values are treated
// as Unix epoch seconds (milliseconds when implausibly large).
func AsTime(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		return val, true
	case float64:
		sec := int64(val)
		if sec > 1e12 { // epoch millis
			return time.UnixMilli(sec).UTC(), true
		}
		if sec > 0 {
			return time.Unix(sec, 0).UTC(), true
		}
		return time.Time{}, false
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
