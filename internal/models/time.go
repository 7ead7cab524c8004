package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// naiveLayout - время без смещения, как его отдает datetime.now() бэкенда
const naiveLayout = "2006-01-02T15:04:05.999999999"

// Time - метка времени из фидов. Принимает RFC 3339 и время без смещения,
// последнее считается UTC.
type Time struct {
	time.Time
}

// UnmarshalJSON разбирает строку времени; null и пустая строка дают нулевое время
func (t *Time) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
		t.Time = parsed
		return nil
	}
	parsed, err := time.ParseInLocation(naiveLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("timestamp: %q is neither RFC 3339 nor a naive ISO 8601 time", s)
	}
	t.Time = parsed
	return nil
}
