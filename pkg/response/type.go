package response

import (
	"encoding/json"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a calendar date that marshals as DateFormat in UTC.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateFormat))
}

// UnmarshalJSON accepts DateFormat or RFC3339.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// ParseDate parses DateFormat first and falls back to RFC3339.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// DateTime is a datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}

// UnmarshalJSON accepts DateTimeFormat or RFC3339.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(DateTimeFormat, s, time.UTC)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, s); err != nil {
			return err
		}
	}
	*d = DateTime(t)
	return nil
}
