// Package idempotency guards background jobs against duplicate delivery with
// a per-key state machine in Redis: none -> in_progress -> completed | failed.
package idempotency

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrAlreadyInProgress = errors.New("idempotency: operation already in progress")
	ErrAlreadyCompleted  = errors.New("idempotency: operation already completed")
	ErrAlreadyFailed     = errors.New("idempotency: operation already failed")
	ErrInvalidState      = errors.New("idempotency: invalid state")
)

type state string

const (
	stateInProgress state = "in_progress"
	stateCompleted  state = "completed"
	stateFailed     state = "failed"
)

func (s state) err() error {
	switch s {
	case stateInProgress:
		return ErrAlreadyInProgress
	case stateCompleted:
		return ErrAlreadyCompleted
	case stateFailed:
		return ErrAlreadyFailed
	default:
		return ErrInvalidState
	}
}

// Idempotency runs fn at most once per key while the recorded state lives.
type Idempotency interface {
	Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error
}

const (
	defaultPrefix       = "idempotency:"
	defaultLockDuration = time.Minute
	defaultStateTTL     = time.Hour
)

// Options is the resolved form of a set of Option values.
type Options struct {
	LockDuration   time.Duration
	StateTTL       time.Duration
	ReleaseOnError bool
}

type Option func(*Options)

// WithLockDuration bounds how long an in-progress marker survives a crashed worker.
func WithLockDuration(d time.Duration) Option {
	return func(o *Options) { o.LockDuration = d }
}

// WithStateTTL sets how long the final state is remembered.
func WithStateTTL(d time.Duration) Option {
	return func(o *Options) { o.StateTTL = d }
}

// WithReleaseOnError drops the key when fn fails instead of recording failed,
// so a redelivered message runs fn again.
func WithReleaseOnError() Option {
	return func(o *Options) { o.ReleaseOnError = true }
}

// Resolve applies opts over the defaults.
func Resolve(opts ...Option) Options {
	o := Options{LockDuration: defaultLockDuration, StateTTL: defaultStateTTL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.LockDuration <= 0 {
		o.LockDuration = defaultLockDuration
	}
	if o.StateTTL <= 0 {
		o.StateTTL = defaultStateTTL
	}
	return o
}

// StateTracker implements Idempotency on Redis.
type StateTracker struct {
	client redis.UniversalClient
	prefix string
}

// New returns a tracker storing keys under prefix. An empty prefix uses "idempotency:".
func New(client redis.UniversalClient, prefix string) *StateTracker {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &StateTracker{client: client, prefix: prefix}
}

func (s *StateTracker) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...Option) error {
	o := Resolve(opts...)

	fk := s.prefix + key
	if err := s.acquire(ctx, fk, o.LockDuration); err != nil {
		return err
	}

	if err := fn(ctx); err != nil {
		var markErr error
		if o.ReleaseOnError {
			markErr = s.client.Del(ctx, fk).Err()
		} else {
			markErr = s.client.Set(ctx, fk, string(stateFailed), o.StateTTL).Err()
		}
		if markErr != nil {
			return errors.Join(err, markErr)
		}
		return err
	}

	return s.client.Set(ctx, fk, string(stateCompleted), o.StateTTL).Err()
}

// acquire claims fk or reports the state someone else recorded.
func (s *StateTracker) acquire(ctx context.Context, fk string, lock time.Duration) error {
	for range 2 {
		ok, err := s.client.SetNX(ctx, fk, string(stateInProgress), lock).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		current, err := s.client.Get(ctx, fk).Result()
		if errors.Is(err, redis.Nil) {
			// expired between SetNX and Get
			continue
		}
		if err != nil {
			return err
		}
		return state(current).err()
	}
	return ErrInvalidState
}
