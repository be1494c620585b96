package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/neilotoole/slogt"
	"github.com/shandysiswandi/userguard/internal/pkg/clock"
	"github.com/shandysiswandi/userguard/internal/pkg/config"
	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/pkg/idempotency"
	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/storage"
	"github.com/shandysiswandi/userguard/internal/pkg/validator"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"github.com/shandysiswandi/userguard/internal/uservalidation/rule"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	mu        sync.Mutex
	processes map[int64]*entity.BulkProcess
	rows      map[int64][]entity.BulkRow
	createErr error
	saveErr   error
}

func newFakeDB() *fakeDB {
	return &fakeDB{processes: map[int64]*entity.BulkProcess{}, rows: map[int64][]entity.BulkRow{}}
}

func (f *fakeDB) CreateBulkProcess(_ context.Context, in entity.CreateBulkProcess) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.processes[in.ID] = &entity.BulkProcess{
		ID:        in.ID,
		ObjectKey: in.ObjectKey,
		FileName:  in.FileName,
		CreatedBy: in.CreatedBy,
		Status:    entity.BulkStatusQueued,
	}
	return nil
}

func (f *fakeDB) GetBulkProcess(_ context.Context, id int64) (*entity.BulkProcess, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.processes[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeDB) ListBulkRows(_ context.Context, processID int64, invalidOnly bool) ([]entity.BulkRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.BulkRow
	for _, r := range f.rows[processID] {
		if invalidOnly && r.Valid {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeDB) StartBulkProcess(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.processes[id]
	if !ok {
		return goerror.ErrNotFound
	}
	p.Status = entity.BulkStatusProcessing
	return nil
}

func (f *fakeDB) SaveBulkResult(_ context.Context, res entity.BulkProcessResult, rows []entity.BulkRow) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	p := f.processes[res.ID]
	p.Status, p.Total, p.Valid, p.Invalid = res.Status, res.Total, res.Valid, res.Invalid
	f.rows[res.ID] = rows
	return nil
}

func (f *fakeDB) FailBulkProcess(_ context.Context, id int64, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.processes[id]; ok {
		p.Status = entity.BulkStatusFailed
		p.FailedReason = reason
	}
	return nil
}

type fakeMQ struct {
	mu           sync.Mutex
	requested    []BulkRequestedEvent
	completed    []BulkCompletedEvent
	requestErr   error
	completeErrN int
}

func (f *fakeMQ) PublishBulkRequested(_ context.Context, msg BulkRequestedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.requestErr != nil {
		return f.requestErr
	}
	f.requested = append(f.requested, msg)
	return nil
}

func (f *fakeMQ) PublishBulkCompleted(_ context.Context, msg BulkCompletedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.completeErrN > 0 {
		f.completeErrN--
		return errors.New("broker unavailable")
	}
	f.completed = append(f.completed, msg)
	return nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

func newFakeStorage() *fakeStorage { return &fakeStorage{objects: map[string][]byte{}} }

func (f *fakeStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) Close() error { return nil }

// fakeIdempotency keeps final states in memory and honours WithReleaseOnError.
type fakeIdempotency struct {
	mu     sync.Mutex
	states map[string]error
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, opts ...idempotency.Option) error {
	f.mu.Lock()
	if f.states == nil {
		f.states = map[string]error{}
	}
	if st, ok := f.states[key]; ok {
		f.mu.Unlock()
		return st
	}
	f.states[key] = idempotency.ErrAlreadyInProgress
	f.mu.Unlock()

	err := fn(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		if idempotency.Resolve(opts...).ReleaseOnError {
			delete(f.states, key)
		} else {
			f.states[key] = idempotency.ErrAlreadyFailed
		}
		return err
	}
	f.states[key] = idempotency.ErrAlreadyCompleted
	return nil
}

type seqID struct {
	mu   sync.Mutex
	next int64
}

func (s *seqID) Generate() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

type staticOID string

func (s staticOID) Generate() string { return string(s) }

type fixture struct {
	uc      *Usecase
	db      *fakeDB
	mq      *fakeMQ
	storage *fakeStorage
	idemp   *fakeIdempotency
}

func newFixture(t *testing.T, yaml string) *fixture {
	t.Helper()

	prev := slog.Default()
	slog.SetDefault(slogt.New(t))
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg, err := config.NewViperFromBytes("yaml", []byte(yaml))
	require.NoError(t, err)

	v, err := validator.NewV10Validator()
	require.NoError(t, err)

	rv, err := rule.New(rule.Config{})
	require.NoError(t, err)

	pool := pond.NewPool(4)
	t.Cleanup(pool.StopAndWait)

	f := &fixture{
		db:      newFakeDB(),
		mq:      &fakeMQ{},
		storage: newFakeStorage(),
		idemp:   &fakeIdempotency{},
	}
	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.mq,
		Rule:          rv,
		Idempotency:   f.idemp,
		Validator:     v,
		Config:        cfg,
		Storage:       f.storage,
		Pool:          pool,
		UID:           &seqID{next: 100},
		OID:           staticOID("abc123"),
		Clock:         clock.Fixed(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),
		Instrument:    instrument.NewNoop(),
	})
	return f
}
