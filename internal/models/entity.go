package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
)

// Entity is the common part of every record persisted by the backend.
type Entity struct {
	ID        string    `json:"id"`
	CreatedAt Timestamp `json:"createdAt,omitempty"`
	UpdatedAt Timestamp `json:"updatedAt,omitempty"`
}

// Timestamp accepts the date formats the backend mixes across endpoints:
// LocalDate ("2025-01-01"), LocalDateTime without zone and RFC 3339.
// Text that is not a date is kept in Raw with a zero Time.
type Timestamp struct {
	time.Time
	Raw string
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*t = Timestamp{}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if raw == "" {
		return nil
	}

	parsed, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		t.Raw = raw
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		if t.Raw != "" {
			return json.Marshal(t.Raw)
		}
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// Page is the backend pagination envelope.
type Page[T any] struct {
	Content       []T  `json:"content"`
	TotalPages    int  `json:"totalPages"`
	TotalElements int  `json:"totalElements"`
	Number        int  `json:"number"`
	Size          int  `json:"size"`
	First         bool `json:"first"`
	Last          bool `json:"last"`
	Empty         bool `json:"empty"`
}

// PromotionApplied is the discount attached to an order, reservation or sale.
type PromotionApplied struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name,omitempty"`
	PercentOff float64 `json:"percentOff,omitempty"`
	AmountOff  float64 `json:"amountOff,omitempty"`
}
