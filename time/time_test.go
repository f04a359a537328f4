package time

import (
	"testing"
	"time"
)

var lastModified = time.Date(2023, 11, 14, 22, 13, 20, int(520*time.Millisecond), time.UTC)

func TestFormat(t *testing.T) {
	cases := map[string]struct {
		Format func(time.Time) string
		Value  time.Time
		Expect string
	}{
		"date-time": {
			Format: FormatDateTime,
			Value:  lastModified,
			Expect: "2023-11-14T22:13:20.52Z",
		},
		"date-time truncated to milliseconds": {
			Format: FormatDateTime,
			Value:  time.Date(2023, 11, 14, 22, 13, 20, 123456789, time.UTC),
			Expect: "2023-11-14T22:13:20.123Z",
		},
		"date-time from offset": {
			Format: FormatDateTime,
			Value:  time.Date(2023, 11, 15, 0, 13, 20, 0, time.FixedZone("CEST", 2*60*60)),
			Expect: "2023-11-14T22:13:20Z",
		},
		"http-date": {
			Format: FormatHTTPDate,
			Value:  lastModified,
			Expect: "Tue, 14 Nov 2023 22:13:20 GMT",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			if e, a := c.Expect, c.Format(c.Value); e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}
}

func TestParse(t *testing.T) {
	expect := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)

	cases := map[string]struct {
		Parse     func(string) (time.Time, error)
		Value     string
		ExpectErr bool
	}{
		"date-time":             {Parse: ParseDateTime, Value: "2023-11-14T22:13:20Z"},
		"date-time nanoseconds": {Parse: ParseDateTime, Value: "2023-11-14T22:13:20.000000000Z"},
		"date-time offset":      {Parse: ParseDateTime, Value: "2023-11-14T17:13:20-05:00"},
		"date-time malformed":   {Parse: ParseDateTime, Value: "14/11/2023", ExpectErr: true},
		"http-date":             {Parse: ParseHTTPDate, Value: "Tue, 14 Nov 2023 22:13:20 GMT"},
		"http-date rfc850":      {Parse: ParseHTTPDate, Value: "Tuesday, 14-Nov-23 22:13:20 GMT"},
		"http-date asctime":     {Parse: ParseHTTPDate, Value: "Tue Nov 14 22:13:20 2023"},
		"http-date malformed":   {Parse: ParseHTTPDate, Value: "2023-11-14", ExpectErr: true},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := c.Parse(c.Value)
			if c.ExpectErr {
				if err == nil {
					t.Fatalf("expected error, got %v", actual)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !expect.Equal(actual) {
				t.Errorf("expected %v, got %v", expect, actual)
			}
			if actual.Location() != time.UTC {
				t.Errorf("expected UTC, got %v", actual.Location())
			}
		})
	}
}

func TestEpochSeconds(t *testing.T) {
	cases := map[string]struct {
		Value       time.Time
		ExpectEpoch float64
		ExpectTime  time.Time
	}{
		"whole seconds": {
			Value:       time.Unix(1700000000, 0),
			ExpectEpoch: 1700000000,
			ExpectTime:  time.Unix(1700000000, 0),
		},
		"milliseconds": {
			Value:       lastModified,
			ExpectEpoch: 1700000000.52,
			ExpectTime:  lastModified,
		},
		"sub-millisecond dropped": {
			Value:       time.Unix(1700000000, 123999999),
			ExpectEpoch: 1700000000.123,
			ExpectTime:  time.Unix(1700000000, 123000000),
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			epoch := FormatEpochSeconds(c.Value)
			if e, a := c.ExpectEpoch, epoch; e != a {
				t.Errorf("expected %v, got %v", e, a)
			}
			if e, a := c.ExpectTime, ParseEpochSeconds(epoch); !e.Equal(a) {
				t.Errorf("expected %v, got %v", e, a)
			}
		})
	}

	if e, a := time.Unix(1700000000, 123000000), ParseEpochSeconds(1700000000.123456); !e.Equal(a) {
		t.Errorf("expected truncation to %v, got %v", e, a)
	}
}

func TestDurationMin(t *testing.T) {
	if e, a := 2*time.Second, DurationMin(2*time.Second, 30*time.Second); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
	if e, a := time.Second, DurationMin(5*time.Second, time.Second); e != a {
		t.Errorf("expected %v, got %v", e, a)
	}
}
