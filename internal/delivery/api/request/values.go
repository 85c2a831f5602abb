// Package request holds the loosely typed scalar values accepted by the API.
// Clients send numbers, booleans, dates and text either natively in JSON or as strings
// (form fields, query parameters, admin UI inputs). Each value remembers whether
// it was present and whether it parsed, so the validator can report a field
// issue instead of the binder failing the whole request.
package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar date format accepted next to RFC 3339.
const DateLayout = "2006-01-02"

// Number is a numeric input.
type Number struct {
	raw   string
	value float64
	set   bool
	ok    bool
}

// NewNumber returns a present, valid Number.
func NewNumber(v float64) Number {
	return Number{raw: strconv.FormatFloat(v, 'f', -1, 64), value: v, set: true, ok: true}
}

// UnmarshalJSON accepts a JSON number or a string holding one.
func (n *Number) UnmarshalJSON(data []byte) error {
	n.parse(jsonScalar(data))

	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for form and query values.
func (n *Number) UnmarshalParam(param string) error {
	n.parse(param)

	return nil
}

func (n *Number) parse(raw string) {
	raw = strings.TrimSpace(raw)
	*n = Number{raw: raw}
	if raw == "" || raw == "null" {
		return
	}
	n.set = true
	// ParseFloat accepts "Inf" and "NaN"; neither is a usable input.
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil && !math.IsInf(v, 0) && !math.IsNaN(v) {
		n.value, n.ok = v, true
	}
}

// IsSet reports whether the field was present and non-empty.
func (n Number) IsSet() bool { return n.set }

// Valid reports whether the value parsed as a number.
func (n Number) Valid() bool { return n.ok }

// Raw returns the value as received.
func (n Number) Raw() string { return n.raw }

// Float returns the parsed value.
func (n Number) Float() float64 { return n.value }

// Int returns the parsed value truncated to an int.
func (n Number) Int() int { return int(n.value) }

// IntPtr returns nil when the value is absent.
func (n Number) IntPtr() *int {
	if !n.set {
		return nil
	}
	v := n.Int()

	return &v
}

// FloatPtr returns nil when the value is absent.
func (n Number) FloatPtr() *float64 {
	if !n.set {
		return nil
	}
	v := n.value

	return &v
}

// Bool is a boolean input.
type Bool struct {
	raw   string
	value bool
	set   bool
	ok    bool
}

// UnmarshalJSON accepts a JSON boolean or a string holding one.
func (b *Bool) UnmarshalJSON(data []byte) error {
	b.parse(jsonScalar(data))

	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for form and query values.
func (b *Bool) UnmarshalParam(param string) error {
	b.parse(param)

	return nil
}

func (b *Bool) parse(raw string) {
	raw = strings.TrimSpace(raw)
	*b = Bool{raw: raw}
	if raw == "" || raw == "null" {
		return
	}
	b.set = true
	v, err := strconv.ParseBool(raw)
	if err == nil {
		b.value, b.ok = v, true
	}
}

// IsSet reports whether the field was present and non-empty.
func (b Bool) IsSet() bool { return b.set }

// Valid reports whether the value parsed as a boolean.
func (b Bool) Valid() bool { return b.ok }

// Raw returns the value as received.
func (b Bool) Raw() string { return b.raw }

// Value returns the parsed value.
func (b Bool) Value() bool { return b.value }

// Ptr returns nil when the value is absent.
func (b Bool) Ptr() *bool {
	if !b.set {
		return nil
	}
	v := b.value

	return &v
}

// Date is a calendar date or RFC 3339 timestamp.
type Date struct {
	raw   string
	value time.Time
	set   bool
	ok    bool
}

// UnmarshalJSON accepts a JSON string holding a date.
func (d *Date) UnmarshalJSON(data []byte) error {
	d.parse(jsonScalar(data))

	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for form and query values.
func (d *Date) UnmarshalParam(param string) error {
	d.parse(param)

	return nil
}

func (d *Date) parse(raw string) {
	raw = strings.TrimSpace(raw)
	*d = Date{raw: raw}
	if raw == "" || raw == "null" {
		return
	}
	d.set = true
	for _, layout := range []string{time.RFC3339Nano, DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.value, d.ok = t.UTC(), true

			return
		}
	}
}

// IsSet reports whether the field was present and non-empty.
func (d Date) IsSet() bool { return d.set }

// Valid reports whether the value parsed as a date.
func (d Date) Valid() bool { return d.ok }

// Raw returns the value as received.
func (d Date) Raw() string { return d.raw }

// Time returns the parsed value.
func (d Date) Time() time.Time { return d.value }

// Ptr returns nil when the value is absent.
func (d Date) Ptr() *time.Time {
	if !d.set {
		return nil
	}
	v := d.value

	return &v
}

// jsonScalar unquotes JSON strings and returns other literals as written.
func jsonScalar(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
	}

	return string(data)
}

// Text is a string input that remembers whether it was sent.
type Text struct {
	value string
	set   bool
}

// NewText returns a present Text.
func NewText(s string) Text {
	return Text{value: s, set: true}
}

// UnmarshalJSON accepts any JSON scalar; null leaves the value absent.
func (t *Text) UnmarshalJSON(data []byte) error {
	raw := jsonScalar(data)
	if string(bytes.TrimSpace(data)) == "null" {
		*t = Text{}

		return nil
	}
	*t = Text{value: raw, set: true}

	return nil
}

// UnmarshalParam implements echo.BindUnmarshaler for form and query values.
func (t *Text) UnmarshalParam(param string) error {
	*t = Text{value: param, set: true}

	return nil
}

// IsSet reports whether the field was present.
func (t Text) IsSet() bool { return t.set }

// Value returns the string as received.
func (t Text) Value() string { return t.value }

// Ptr returns nil when the value is absent.
func (t Text) Ptr() *string {
	if !t.set {
		return nil
	}
	v := t.value

	return &v
}
