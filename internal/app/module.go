package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/userguard/internal/uservalidation"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.uservalidation.enabled") {
		if err := uservalidation.New(uservalidation.Dependency{
			Ctx:         a.ctx,
			DBConn:      a.dbConn,
			Goroutine:   a.goroutine,
			Router:      a.router,
			Pool:        a.pool,
			Idempotency: a.idemp,
			Messaging:   a.messaging,
			Storage:     a.storage,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			UUID:        a.uuid,
			OID:         a.oid,
			Clock:       a.clock,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module uservalidation", "error", err)
			os.Exit(1)
		}
	}
}
