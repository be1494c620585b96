package usecase

import (
	"context"

	"github.com/alitto/pond/v2"
	"github.com/shandysiswandi/userguard/internal/pkg/clock"
	"github.com/shandysiswandi/userguard/internal/pkg/config"
	"github.com/shandysiswandi/userguard/internal/pkg/idempotency"
	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/pkg/storage"
	"github.com/shandysiswandi/userguard/internal/pkg/uid"
	"github.com/shandysiswandi/userguard/internal/pkg/validator"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"go.opentelemetry.io/otel/trace"
)

type BulkRequestedEvent struct {
	ProcessID int64
	ObjectKey string
}

type BulkCompletedEvent struct {
	ProcessID    int64
	Status       entity.BulkStatus
	Total        int32
	Valid        int32
	Invalid      int32
	FailedReason string
}

type repoMessaging interface {
	PublishBulkRequested(ctx context.Context, msg BulkRequestedEvent) error
	PublishBulkCompleted(ctx context.Context, msg BulkCompletedEvent) error
}

type repoDB interface {
	CreateBulkProcess(ctx context.Context, in entity.CreateBulkProcess) error
	GetBulkProcess(ctx context.Context, id int64) (*entity.BulkProcess, error)
	ListBulkRows(ctx context.Context, processID int64, invalidOnly bool) ([]entity.BulkRow, error)
	StartBulkProcess(ctx context.Context, id int64) error
	SaveBulkResult(ctx context.Context, res entity.BulkProcessResult, rows []entity.BulkRow) error
	FailBulkProcess(ctx context.Context, id int64, reason string) error
}

type ruleValidator interface {
	Validate(op entity.Operation, req payload.Object) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	rule          ruleValidator
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	storage       storage.Storage
	pool          pond.Pool
	uid           uid.NumberID
	oid           uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Rule          ruleValidator
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	Storage       storage.Storage
	Pool          pond.Pool
	UID           uid.NumberID
	OID           uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		rule:          dep.Rule,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		storage:       dep.Storage,
		pool:          dep.Pool,
		uid:           dep.UID,
		oid:           dep.OID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("uservalidation.usecase").Start(ctx, name)
}

const (
	defaultBulkMaxRows   = 10000
	defaultBulkMaxBytes  = 10 << 20
	defaultBulkLockTTL   = 10 * 60
	defaultBulkStateTTL  = 24 * 60 * 60
	bulkObjectKeyPrefix  = "uservalidation/bulk/"
	bulkIdempotencyScope = "uservalidation:bulk:"
)

func (s *Usecase) bulkMaxRows() int {
	if n := s.cfg.GetInt("validation.bulk.max_rows"); n > 0 {
		return n
	}
	return defaultBulkMaxRows
}

func (s *Usecase) bulkMaxBytes() int64 {
	if n := s.cfg.GetInt64("validation.bulk.max_bytes"); n > 0 {
		return n
	}
	return defaultBulkMaxBytes
}
