package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type deadlineKind int

const (
	deadlineNone deadlineKind = iota
	deadlineTime
	deadlineText
	deadlineKept
)

// DeadlineInput is a deadline as supplied by a caller: absent, a structured
// timestamp, or ISO-8601 text. It is resolved exactly once by
// ValidateTaskDeadline and never stored.
type DeadlineInput struct {
	kind deadlineKind
	at   time.Time
	text string
}

// NoDeadline returns an absent deadline.
func NoDeadline() DeadlineInput {
	return DeadlineInput{}
}

// DeadlineAt wraps a structured timestamp.
func DeadlineAt(t time.Time) DeadlineInput {
	return DeadlineInput{kind: deadlineTime, at: t}
}

// DeadlineText wraps an ISO-8601 string.
func DeadlineText(s string) DeadlineInput {
	return DeadlineInput{kind: deadlineText, text: s}
}

// DeadlineFrom wraps an optional timestamp; nil means no deadline.
func DeadlineFrom(t *time.Time) DeadlineInput {
	if t == nil {
		return NoDeadline()
	}
	return DeadlineAt(*t)
}

// KeepDeadline carries a stored deadline through an update unchanged. It is
// not checked against now, so a passed deadline survives edits to other
// fields. nil means no deadline.
func KeepDeadline(t *time.Time) DeadlineInput {
	if t == nil {
		return NoDeadline()
	}
	return DeadlineInput{kind: deadlineKept, at: *t}
}

// IsSet reports whether a deadline was supplied.
func (d DeadlineInput) IsSet() bool {
	return d.kind != deadlineNone
}

// UnmarshalJSON accepts null or a string.
func (d *DeadlineInput) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = NoDeadline()
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: deadline must be an ISO 8601 string", ErrInvalidTaskDeadline)
	}
	*d = DeadlineText(s)
	return nil
}

// Layouts carrying a UTC offset. Fractional seconds are accepted after the
// seconds field by time.Parse even when the layout omits them.
var offsetLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
}

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseDeadlineText parses ISO-8601 text. Text without an offset is naive
// and is read as wall-clock time in loc.
func parseDeadlineText(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a valid ISO 8601 date", ErrInvalidTaskDeadline, s)
}

// ValidateTaskDeadline resolves in against now. An absent deadline yields
// nil. Otherwise the deadline must be strictly after now; the returned
// instant is normalized to UTC.
func ValidateTaskDeadline(in DeadlineInput, now time.Time) (*time.Time, error) {
	var t time.Time
	switch in.kind {
	case deadlineNone:
		return nil, nil
	case deadlineKept:
		kept := in.at.UTC()
		return &kept, nil
	case deadlineTime:
		t = in.at
	case deadlineText:
		parsed, err := parseDeadlineText(in.text, now.Location())
		if err != nil {
			return nil, err
		}
		t = parsed
	}

	if !t.After(now) {
		return nil, fmt.Errorf("%w: deadline %s must be in the future", ErrInvalidTaskDeadline, t.Format(time.RFC3339))
	}

	utc := t.UTC()
	return &utc, nil
}
