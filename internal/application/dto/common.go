package dto

import (
	"encoding/json"
	"strings"
	"time"
)

// ErrorResponse cuerpo de error HTTP: {"error": mensaje, "code": código}.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse cuerpo de confirmación simple (ej. eliminaciones).
type MessageResponse struct {
	Message string `json:"message"`
}

// dateOnlyLayout formato de los inputs type="date" del frontend.
const dateOnlyLayout = "2006-01-02"

// Date acepta RFC 3339 o YYYY-MM-DD en JSON y se serializa como RFC 3339.
type Date struct {
	time.Time
}

// UnmarshalJSON implementa json.Unmarshaler.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return err
	}
	d.Time = t.UTC()
	return nil
}

// MarshalJSON implementa json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// DateOrNow devuelve la fecha si viene informada; si no, now.
func DateOrNow(d *Date, now time.Time) time.Time {
	if d == nil || d.IsZero() {
		return now
	}
	return d.Time
}
