// Package time formats and parses the timestamp representations used on the
// wire: RFC 3339 date-times, IMF-fixdate HTTP dates, and fractional epoch
// seconds.
package time

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	// dateTimeFormatInput is an RFC 3339 date-time with a Z offset. Fractional
	// seconds are optional on input.
	dateTimeFormatInput = "2006-01-02T15:04:05.999999999Z"

	// dateTimeFormatOutput is the millisecond precision form written by the
	// client.
	dateTimeFormatOutput = "2006-01-02T15:04:05.999Z"

	// httpDateFormat is an IMF-fixdate https://tools.ietf.org/html/rfc7231.html#section-7.1.1.1
	httpDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// FormatDateTime formats value as a date-time in UTC with millisecond
// precision.
func FormatDateTime(value time.Time) string {
	return value.UTC().Format(dateTimeFormatOutput)
}

// ParseDateTime parses a date-time. Offsets other than Z are accepted and
// normalized to UTC.
func ParseDateTime(value string) (time.Time, error) {
	return tryParse(value, dateTimeFormatInput, time.RFC3339Nano)
}

// FormatHTTPDate formats value as a http-date
func FormatHTTPDate(value time.Time) string {
	return value.UTC().Format(httpDateFormat)
}

// ParseHTTPDate parses a string as a http-date
func ParseHTTPDate(value string) (time.Time, error) {
	return tryParse(value, httpDateFormat, time.RFC1123, time.RFC850, time.ANSIC)
}

// FormatEpochSeconds returns value as a Unix time in seconds with millisecond
// precision.
func FormatEpochSeconds(value time.Time) float64 {
	ms := value.UnixNano() / int64(time.Millisecond)
	return float64(ms) / 1e3
}

// ParseEpochSeconds returns the UTC time for a Unix time in seconds.
// Precision beyond milliseconds is truncated.
func ParseEpochSeconds(value float64) time.Time {
	f := big.NewFloat(value)
	f = f.Mul(f, big.NewFloat(1e3))
	i, _ := f.Int64()
	return time.Unix(0, i*1e6).UTC()
}

func tryParse(v string, formats ...string) (time.Time, error) {
	var errs []string
	for _, f := range formats {
		t, err := time.Parse(f, v)
		if err == nil {
			return t.UTC(), nil
		}
		errs = append(errs, err.Error())
	}
	return time.Time{}, fmt.Errorf("unable to parse time %q: %s", v, strings.Join(errs, "; "))
}

// DurationMin returns the smaller of two durations.
func DurationMin(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
