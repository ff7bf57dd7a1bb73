package ports

import (
	"context"

	"github.com/bnema/coach-cli/internal/domain"
)

type MeetingAPI interface {
	ListMeetings(ctx context.Context) ([]domain.Session, error)
	CreateMeeting(ctx context.Context, request domain.MeetingRequest) (domain.Session, error)
	JoinMeeting(ctx context.Context, id int64) (domain.Session, error)
	MeetingToken(ctx context.Context) (string, error)
}

// URLOpener hands a URL to something outside the process, typically a browser.
type URLOpener interface {
	Open(ctx context.Context, rawURL string) error
}
