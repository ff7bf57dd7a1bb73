// Package remote holds the client-side cache for server-owned collections.
//
// A Store keeps the last known-good list of one entity type, an optional selected item and the
// lifecycle status of the operations issued against it. Every operation is attempted exactly once.
// Responses are reconciled with a monotonic ticket check: a response is only written into the
// list (or the selection) when no newer operation has already written it.
package remote

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bnema/coach-cli/internal/domain"
	"go.uber.org/zap"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Placement decides where Create puts the server's record.
type Placement int

const (
	Append Placement = iota
	Prepend
)

// NoInput is the input type of stores that cannot create entities.
type NoInput struct{}

const defaultFailureMessage = "La requête a échoué."

// Messages are the per-operation fallbacks shown when the server sent no message.
type Messages struct {
	FetchAll  string
	FetchByID string
	Create    string
}

type Config[T any, In any] struct {
	Name      string
	List      func(ctx context.Context) ([]T, error)
	Get       func(ctx context.Context, id int64) (T, error)
	Create    func(ctx context.Context, in In) (T, error)
	Placement Placement
	Messages  Messages
	Logger    *zap.Logger
}

// Snapshot is a copy of a store's state; mutating it has no effect on the store.
type Snapshot[T any] struct {
	Items    []T
	Selected *T
	Status   Status
	Err      string
	ErrKind  domain.ErrorKind
}

type outcome struct {
	status Status
	err    string
	kind   domain.ErrorKind
}

type operation struct {
	name          string
	ticket        uint64
	pre           outcome
	settledBefore uint64
}

type Store[T any, In any] struct {
	cfg    Config[T, In]
	logger *zap.Logger

	mu       sync.Mutex
	items    []T
	selected *T
	outcome  outcome
	inflight int
	// ticket is the last issued operation number. settled, itemsAt and selectedAt hold the
	// ticket of the newest operation that wrote the outcome, the items and the selection.
	// replacedAt only tracks full replaces.
	ticket     uint64
	settled    uint64
	itemsAt    uint64
	replacedAt uint64
	selectedAt uint64
}

func NewStore[T any, In any](cfg Config[T, In]) *Store[T, In] {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store[T, In]{
		cfg:     cfg,
		logger:  logger.With(zap.String("store", cfg.Name)),
		outcome: outcome{status: StatusIdle},
	}
}

func (s *Store[T, In]) Name() string {
	return s.cfg.Name
}

// FetchAll replaces the whole collection with the server's list.
func (s *Store[T, In]) FetchAll(ctx context.Context) Result[[]T] {
	if s.cfg.List == nil {
		return unsupported[[]T](s.cfg.Name, "fetch all")
	}
	return s.Load(ctx, "fetch_all", s.cfg.Messages.FetchAll, s.cfg.List, nil)
}

// FetchByID writes one entity into the selection; the collection is untouched.
func (s *Store[T, In]) FetchByID(ctx context.Context, id int64) Result[T] {
	if s.cfg.Get == nil {
		return unsupported[T](s.cfg.Name, "fetch by id")
	}
	return s.Select(ctx, "fetch_by_id", s.cfg.Messages.FetchByID, func(ctx context.Context) (T, error) {
		return s.cfg.Get(ctx, id)
	})
}

// Create posts in and inserts the server's canonical record.
func (s *Store[T, In]) Create(ctx context.Context, in In) Result[T] {
	if s.cfg.Create == nil {
		return unsupported[T](s.cfg.Name, "create")
	}
	return s.Insert(ctx, "create", s.cfg.Messages.Create, func(ctx context.Context) (T, error) {
		return s.cfg.Create(ctx, in)
	}, nil)
}

// Load runs fetch with the FetchAll lifecycle. Flows use it for scoped lists. applied, when set,
// runs under the store lock only if the response replaces the collection.
func (s *Store[T, In]) Load(ctx context.Context, name, fallback string, fetch func(context.Context) ([]T, error), applied func()) Result[[]T] {
	op := s.begin(name)
	items, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		kind, message := s.failLocked(op, fallback, err)
		return Fail[[]T](kind, message, err)
	}
	if op.ticket < s.itemsAt {
		s.abandonLocked(op)
		return Fail[[]T]("", "", domain.ErrSuperseded)
	}

	s.itemsAt = op.ticket
	s.replacedAt = op.ticket
	s.items = slices.Clone(items)
	if applied != nil {
		applied()
	}
	s.settleLocked(op, outcome{status: StatusSucceeded})

	return Ok(slices.Clone(items))
}

// Select runs fetch with the FetchByID lifecycle.
func (s *Store[T, In]) Select(ctx context.Context, name, fallback string, fetch func(context.Context) (T, error)) Result[T] {
	op := s.begin(name)
	value, err := fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		kind, message := s.failLocked(op, fallback, err)
		return Fail[T](kind, message, err)
	}
	if op.ticket < s.selectedAt {
		s.abandonLocked(op)
		return Fail[T]("", "", domain.ErrSuperseded)
	}

	s.selectedAt = op.ticket
	selected := value
	s.selected = &selected
	s.settleLocked(op, outcome{status: StatusSucceeded})

	return Ok(value)
}

// Insert runs create with the Create lifecycle. keep, when set, decides whether the record joins
// the collection; the caller gets it either way.
func (s *Store[T, In]) Insert(ctx context.Context, name, fallback string, create func(context.Context) (T, error), keep func(T) bool) Result[T] {
	op := s.begin(name)
	created, err := create(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		kind, message := s.failLocked(op, fallback, err)
		return Fail[T](kind, message, err)
	}

	// A newer list already replaced the collection and is authoritative.
	if op.ticket > s.replacedAt && (keep == nil || keep(created)) {
		s.itemsAt = max(s.itemsAt, op.ticket)
		if s.cfg.Placement == Prepend {
			s.items = append([]T{created}, s.items...)
		} else {
			s.items = append(slices.Clone(s.items), created)
		}
	}
	s.settleLocked(op, outcome{status: StatusSucceeded})

	return Ok(created)
}

func (s *Store[T, In]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selected = nil
	s.selectedAt = s.ticket
}

func (s *Store[T, In]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outcome.err = ""
	s.outcome.kind = ""
}

func (s *Store[T, In]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := Snapshot[T]{
		Items:   slices.Clone(s.items),
		Status:  s.outcome.status,
		Err:     s.outcome.err,
		ErrKind: s.outcome.kind,
	}
	if s.inflight > 0 {
		snapshot.Status = StatusPending
	}
	if s.selected != nil {
		selected := *s.selected
		snapshot.Selected = &selected
	}

	return snapshot
}

func (s *Store[T, In]) begin(name string) operation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ticket++
	s.inflight++
	op := operation{
		name:          name,
		ticket:        s.ticket,
		pre:           s.outcome,
		settledBefore: s.settled,
	}
	s.outcome.err = ""
	s.outcome.kind = ""

	s.logger.Debug("store operation started", zap.String("op", name), zap.Uint64("ticket", op.ticket))
	return op
}

func (s *Store[T, In]) settleLocked(op operation, result outcome) {
	s.inflight--
	if op.ticket > s.settled {
		s.settled = op.ticket
		s.outcome = result
	}
}

// abandonLocked ends op without a result. The pre-call state comes back only when op was the
// last operation issued and nothing settled while it was in flight.
func (s *Store[T, In]) abandonLocked(op operation) {
	s.inflight--
	if s.inflight == 0 && op.ticket == s.ticket && s.settled == op.settledBefore {
		s.outcome = op.pre
	}
}

func (s *Store[T, In]) failLocked(op operation, fallback string, err error) (domain.ErrorKind, string) {
	if errors.Is(err, context.Canceled) {
		s.abandonLocked(op)
		s.logger.Debug("store operation canceled", zap.String("op", op.name), zap.Uint64("ticket", op.ticket))
		return "", ""
	}

	if fallback == "" {
		fallback = defaultFailureMessage
	}
	kind := domain.KindOf(err)
	if kind == "" {
		kind = domain.KindNetwork
	}
	message := domain.MessageOf(err, fallback)

	s.settleLocked(op, outcome{status: StatusFailed, err: message, kind: kind})
	s.logger.Warn("store operation failed",
		zap.String("op", op.name),
		zap.String("kind", string(kind)),
		zap.Error(err),
	)

	return kind, message
}

func unsupported[R any](store, op string) Result[R] {
	return Fail[R]("", "", fmt.Errorf("%s %s: %w", store, op, domain.ErrUnsupported))
}
