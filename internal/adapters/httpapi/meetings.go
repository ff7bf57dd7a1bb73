package httpapi

import (
	"context"
	"fmt"

	"github.com/bnema/coach-cli/internal/domain"
)

func (c *Client) ListMeetings(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := c.getJSON(ctx, "/zoom/meetings", &sessions); err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}

	return sessions, nil
}

func (c *Client) CreateMeeting(ctx context.Context, request domain.MeetingRequest) (domain.Session, error) {
	var session domain.Session
	if err := c.postJSON(ctx, "/zoom/meetings", request, &session); err != nil {
		return domain.Session{}, fmt.Errorf("create meeting: %w", err)
	}

	return session, nil
}

func (c *Client) JoinMeeting(ctx context.Context, id int64) (domain.Session, error) {
	var session domain.Session
	if err := c.getJSON(ctx, fmt.Sprintf("/zoom/meetings/%d/join", id), &session); err != nil {
		return domain.Session{}, fmt.Errorf("join meeting %d: %w", id, err)
	}

	return session, nil
}

type meetingTokenResponse struct {
	Token string `json:"token"`
}

func (c *Client) MeetingToken(ctx context.Context) (string, error) {
	var payload meetingTokenResponse
	if err := c.getJSON(ctx, "/zoom/token", &payload); err != nil {
		return "", fmt.Errorf("meeting token: %w", err)
	}

	return payload.Token, nil
}
