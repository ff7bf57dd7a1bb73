package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionStarted   SessionStatus = "started"
	SessionFinished  SessionStatus = "finished"
)

func (s SessionStatus) Label() string {
	switch s {
	case SessionScheduled:
		return "Programmée"
	case SessionStarted:
		return "En cours"
	case SessionFinished:
		return "Terminée"
	default:
		return string(s)
	}
}

// Ref is a user reference that the API sends either as a number or a string.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Ref(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("decode ref: %w", err)
	}
	*r = Ref(n.String())
	return nil
}

type Session struct {
	ID        int64         `json:"id"`
	UUID      string        `json:"uuid,omitempty"`
	Topic     string        `json:"topic"`
	StartTime time.Time     `json:"start_time"`
	Duration  int           `json:"duration"`
	HostID    Ref           `json:"host_id,omitempty"`
	GuestID   Ref           `json:"guest_id,omitempty"`
	Status    SessionStatus `json:"status"`
	// JoinURL is only set on responses to a join request.
	JoinURL string `json:"join_url,omitempty"`
}

const (
	TopicMinLength = 5
	TopicMaxLength = 100
	MinLeadTime    = 10 * time.Minute
	MinDuration    = 30
	MaxDuration    = 240
	DurationStep   = 15
)

// SessionDraft is the booking form before submission. It is never stored.
type SessionDraft struct {
	Topic     string
	StartTime time.Time
	Duration  int
	GuestID   string
}

// Validate applies the form rules. The server remains the final authority.
func (d SessionDraft) Validate(now time.Time) error {
	verr := &ValidationError{}

	topicLength := utf8.RuneCountInString(strings.TrimSpace(d.Topic))
	if topicLength < TopicMinLength || topicLength > TopicMaxLength {
		verr.add("topic", fmt.Sprintf("must be between %d and %d characters", TopicMinLength, TopicMaxLength))
	}

	if d.StartTime.IsZero() {
		verr.add("start_time", "is required")
	} else if d.StartTime.Before(now.Add(MinLeadTime)) {
		verr.add("start_time", "must be at least 10 minutes from now")
	}

	if d.Duration < MinDuration || d.Duration > MaxDuration || d.Duration%DurationStep != 0 {
		verr.add("duration", fmt.Sprintf("must be between %d and %d minutes in steps of %d", MinDuration, MaxDuration, DurationStep))
	}

	if strings.TrimSpace(d.GuestID) == "" {
		verr.add("guest_id", "is required")
	}

	return verr.orNil()
}

type MeetingRequest struct {
	Topic     string `json:"topic"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	GuestID   string `json:"guest_id"`
}

func (d SessionDraft) Request() MeetingRequest {
	return MeetingRequest{
		Topic:     strings.TrimSpace(d.Topic),
		StartTime: d.StartTime.UTC().Format(time.RFC3339),
		Duration:  d.Duration,
		GuestID:   strings.TrimSpace(d.GuestID),
	}
}

// MeetingToken is the provider SDK token and its expiry, zero when unknown.
type MeetingToken struct {
	Token     string
	ExpiresAt time.Time
}

func (t MeetingToken) Expired(now time.Time) bool {
	if t.Token == "" {
		return true
	}
	if t.ExpiresAt.IsZero() {
		return false
	}
	return !t.ExpiresAt.After(now)
}
