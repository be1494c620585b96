package uservalidation

import (
	"context"

	"github.com/alitto/pond/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/userguard/internal/pkg/clock"
	"github.com/shandysiswandi/userguard/internal/pkg/config"
	"github.com/shandysiswandi/userguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/userguard/internal/pkg/idempotency"
	"github.com/shandysiswandi/userguard/internal/pkg/instrument"
	"github.com/shandysiswandi/userguard/internal/pkg/messaging"
	"github.com/shandysiswandi/userguard/internal/pkg/router"
	"github.com/shandysiswandi/userguard/internal/pkg/storage"
	"github.com/shandysiswandi/userguard/internal/pkg/uid"
	"github.com/shandysiswandi/userguard/internal/pkg/validator"
	"github.com/shandysiswandi/userguard/internal/uservalidation/inbound"
	"github.com/shandysiswandi/userguard/internal/uservalidation/outbound/db"
	"github.com/shandysiswandi/userguard/internal/uservalidation/outbound/mq"
	"github.com/shandysiswandi/userguard/internal/uservalidation/rule"
	"github.com/shandysiswandi/userguard/internal/uservalidation/usecase"
)

type Dependency struct {
	Ctx         context.Context            `validate:"required"`
	DBConn      *pgxpool.Pool              `validate:"required"`
	Goroutine   *goroutine.Manager         `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Pool        pond.Pool                  `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Storage     storage.Storage            `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	UUID        uid.StringID               `validate:"required"`
	OID         uid.StringID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   *validator.V10Validator    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	rules, err := rule.New(rule.Config{
		DefaultCountryCode: dep.Config.GetString("validation.default_country_code"),
		Checker:            dep.Validator,
	})
	if err != nil {
		return err
	}

	dbBulk := db.NewDB(dep.DBConn, dep.Instrument)
	if dep.Config.GetBool("database.migrate") {
		if err := dbBulk.Migrate(dep.Ctx); err != nil {
			return err
		}
	}

	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        dbBulk,
		RepoMessaging: repoMsg,
		Rule:          rules,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Storage:       dep.Storage,
		Pool:          dep.Pool,
		UID:           dep.UID,
		OID:           dep.OID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)
	inbound.RegisterMQConsumer(dep.Ctx, dep.Config, dep.Goroutine, dep.Messaging, dep.UUID, uc, dep.Instrument)

	return nil
}
