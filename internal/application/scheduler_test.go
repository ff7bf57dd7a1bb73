package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/ports/mocks"
	"github.com/bnema/coach-cli/internal/remote"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(t *testing.T) (*Scheduler, *mocks.MockMeetingAPI, *mocks.MockURLOpener) {
	t.Helper()

	api := mocks.NewMockMeetingAPI(t)
	opener := mocks.NewMockURLOpener(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()

	return NewScheduler(api, opener, clock, nil), api, opener
}

func TestSchedulerCreateRejectsInvalidDraftWithoutCallingAPI(t *testing.T) {
	scheduler, _, _ := newTestScheduler(t)

	res := scheduler.Create(context.Background(), domain.SessionDraft{
		Topic:     "Hi",
		StartTime: testNow.Add(time.Minute),
		Duration:  45,
		GuestID:   "5",
	})

	require.False(t, res.OK())
	assert.Equal(t, domain.KindValidation, res.Kind)
	var verr *domain.ValidationError
	require.ErrorAs(t, res.Err, &verr)
	assert.True(t, verr.Has("topic"))
	assert.True(t, verr.Has("start_time"))
	assert.Empty(t, scheduler.Snapshot().Items)
}

func TestSchedulerCreateDispatchesValidDraftAndAppends(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	existing := domain.Session{ID: 1, Topic: "Bilan"}
	created := domain.Session{ID: 2, Topic: "Coaching intro call", StartTime: testNow.Add(30 * time.Minute), Duration: 60, GuestID: "5", Status: domain.SessionScheduled}

	api.EXPECT().ListMeetings(mockAnyContext()).Return([]domain.Session{existing}, nil).Once()
	api.EXPECT().CreateMeeting(mockAnyContext(), domain.MeetingRequest{
		Topic:     "Coaching intro call",
		StartTime: "2026-02-14T12:30:00Z",
		Duration:  60,
		GuestID:   "5",
	}).Return(created, nil).Once()

	require.True(t, scheduler.List(context.Background()).OK())
	res := scheduler.Create(context.Background(), domain.SessionDraft{
		Topic:     "Coaching intro call",
		StartTime: testNow.Add(30 * time.Minute),
		Duration:  60,
		GuestID:   "5",
	})

	require.True(t, res.OK())
	assert.Equal(t, []domain.Session{existing, created}, scheduler.Snapshot().Items)
}

func TestSchedulerCreateSurfacesServerMessageVerbatim(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	api.EXPECT().CreateMeeting(mockAnyContext(), mock.Anything).Return(domain.Session{}, &domain.APIError{
		Kind:       domain.KindServerRejected,
		StatusCode: 422,
		Message:    "The guest is not available at that time.",
	}).Once()

	res := scheduler.Create(context.Background(), domain.SessionDraft{Topic: "Weekly sync", StartTime: testNow.Add(time.Hour), Duration: 30, GuestID: "5"})

	require.False(t, res.OK())
	assert.Equal(t, "The guest is not available at that time.", res.Message)
	assert.Equal(t, "The guest is not available at that time.", scheduler.Snapshot().Err)
}

func TestSchedulerJoinOpensJoinURLEveryTime(t *testing.T) {
	scheduler, api, opener := newTestScheduler(t)

	session := domain.Session{ID: 85746065432, Status: domain.SessionStarted, JoinURL: "https://zoom.us/j/85746065432"}
	api.EXPECT().JoinMeeting(mockAnyContext(), int64(85746065432)).Return(session, nil).Twice()
	opener.EXPECT().Open(mockAnyContext(), "https://zoom.us/j/85746065432").Return(nil).Twice()

	for i := 0; i < 2; i++ {
		res := scheduler.Join(context.Background(), 85746065432)
		require.True(t, res.OK())
	}

	selected := scheduler.Snapshot().Selected
	require.NotNil(t, selected)
	assert.Equal(t, "https://zoom.us/j/85746065432", selected.JoinURL)
}

func TestSchedulerJoinFailureUsesFallback(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	api.EXPECT().JoinMeeting(mockAnyContext(), int64(3)).Return(domain.Session{}, errors.New("connection refused")).Once()

	res := scheduler.Join(context.Background(), 3)

	require.False(t, res.OK())
	assert.Equal(t, "Failed to join session", res.Message)
	assert.Equal(t, domain.KindNetwork, res.Kind)
}

func TestSchedulerJoinWithoutURLDoesNotOpen(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	api.EXPECT().JoinMeeting(mockAnyContext(), int64(3)).Return(domain.Session{ID: 3}, nil).Once()

	res := scheduler.Join(context.Background(), 3)

	require.ErrorIs(t, res.Err, ErrMissingJoinURL)
	assert.Equal(t, domain.KindServerRejected, res.Kind)
	assert.Equal(t, "Failed to join session", res.Message)

	snapshot := scheduler.Snapshot()
	assert.Equal(t, remote.StatusFailed, snapshot.Status)
	assert.Equal(t, "Failed to join session", snapshot.Err)
	assert.Equal(t, domain.KindServerRejected, snapshot.ErrKind)
	assert.Nil(t, snapshot.Selected)
}

func TestSchedulerJoinURLSkipsOpener(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	session := domain.Session{ID: 7, JoinURL: "https://zoom.us/j/7"}
	api.EXPECT().JoinMeeting(mockAnyContext(), int64(7)).Return(session, nil).Once()

	res := scheduler.JoinURL(context.Background(), 7)

	require.True(t, res.OK())
	assert.Equal(t, session, res.Value)
	selected := scheduler.Snapshot().Selected
	require.NotNil(t, selected)
	assert.Equal(t, "https://zoom.us/j/7", selected.JoinURL)
}

func TestSchedulerZoomTokenDecodesExpiryAndCaches(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	expiresAt := testNow.Add(time.Hour)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	api.EXPECT().MeetingToken(mockAnyContext()).Return(signed, nil).Once()

	first := scheduler.ZoomToken(context.Background())
	require.True(t, first.OK())
	assert.Equal(t, signed, first.Value.Token)
	assert.True(t, expiresAt.Equal(first.Value.ExpiresAt))

	second := scheduler.ZoomToken(context.Background())
	require.True(t, second.OK())
	assert.Equal(t, first.Value, second.Value)
}

func TestSchedulerZoomTokenRefetchesExpiredToken(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(testNow.Add(-time.Minute)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	api.EXPECT().MeetingToken(mockAnyContext()).Return(expired, nil).Twice()

	require.True(t, scheduler.ZoomToken(context.Background()).OK())
	require.True(t, scheduler.ZoomToken(context.Background()).OK())
}

func TestSchedulerZoomTokenOpaqueTokenHasNoExpiry(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	api.EXPECT().MeetingToken(mockAnyContext()).Return("opaque-token", nil).Once()

	res := scheduler.ZoomToken(context.Background())

	require.True(t, res.OK())
	assert.True(t, res.Value.ExpiresAt.IsZero())
}

func TestSchedulerZoomTokenFailureShowsInSnapshotAndClears(t *testing.T) {
	scheduler, api, _ := newTestScheduler(t)

	api.EXPECT().MeetingToken(mockAnyContext()).Return("", errors.New("timeout")).Once()

	res := scheduler.ZoomToken(context.Background())

	require.False(t, res.OK())
	assert.Equal(t, "Failed to get Zoom token", scheduler.Snapshot().Err)

	scheduler.ClearError()
	scheduler.ClearError()
	assert.Empty(t, scheduler.Snapshot().Err)
}
