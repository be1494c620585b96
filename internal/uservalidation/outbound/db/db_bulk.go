package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
)

const (
	sqlCreateBulkProcess = `INSERT INTO uservalidation_bulk_processes
	(id, object_key, file_name, status, created_by) VALUES ($1, $2, $3, $4, $5)`

	sqlGetBulkProcess = `SELECT id, object_key, file_name, status, total, valid, invalid,
	failed_reason, created_by, created_at, updated_at
	FROM uservalidation_bulk_processes WHERE id = $1`

	sqlStartBulkProcess = `UPDATE uservalidation_bulk_processes
	SET status = $2, updated_at = NOW() WHERE id = $1 AND status IN ($2, $3)`

	sqlFinishBulkProcess = `UPDATE uservalidation_bulk_processes
	SET status = $2, total = $3, valid = $4, invalid = $5, failed_reason = $6, updated_at = NOW()
	WHERE id = $1`

	sqlDeleteBulkRows = `DELETE FROM uservalidation_bulk_rows WHERE process_id = $1`

	sqlListBulkRows = `SELECT id, process_id, row_number, payload, valid, error_code, error_msg
	FROM uservalidation_bulk_rows WHERE process_id = $1 AND ($2 = FALSE OR valid = FALSE)
	ORDER BY row_number`
)

var bulkRowColumns = []string{"id", "process_id", "row_number", "payload", "valid", "error_code", "error_msg"}

func (s *DB) CreateBulkProcess(ctx context.Context, in entity.CreateBulkProcess) (err error) {
	ctx, span := s.startSpan(ctx, "CreateBulkProcess")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, sqlCreateBulkProcess,
		in.ID, in.ObjectKey, in.FileName, entity.BulkStatusQueued, in.CreatedBy)
	err = s.mapError(err)
	return err
}

func (s *DB) GetBulkProcess(ctx context.Context, id int64) (_ *entity.BulkProcess, err error) {
	ctx, span := s.startSpan(ctx, "GetBulkProcess")
	defer func() { s.endSpan(span, err) }()

	var p entity.BulkProcess
	err = s.conn.QueryRow(ctx, sqlGetBulkProcess, id).Scan(
		&p.ID, &p.ObjectKey, &p.FileName, &p.Status, &p.Total, &p.Valid, &p.Invalid,
		&p.FailedReason, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err = s.mapError(err); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *DB) ListBulkRows(ctx context.Context, processID int64, invalidOnly bool) (_ []entity.BulkRow, err error) {
	ctx, span := s.startSpan(ctx, "ListBulkRows")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, sqlListBulkRows, processID, invalidOnly)
	if err != nil {
		return nil, s.mapError(err)
	}

	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.BulkRow, error) {
		var r entity.BulkRow
		err := row.Scan(&r.ID, &r.ProcessID, &r.RowNumber, &r.Payload, &r.Valid, &r.ErrorCode, &r.ErrorMsg)
		return r, err
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return result, nil
}

// StartBulkProcess moves a queued process to processing. A process that is
// already final reports goerror.ErrConflict.
func (s *DB) StartBulkProcess(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "StartBulkProcess")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, sqlStartBulkProcess, id, entity.BulkStatusProcessing, entity.BulkStatusQueued)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrConflict
	}

	return nil
}

// SaveBulkResult replaces the rows of a process and stores its totals in one
// transaction.
func (s *DB) SaveBulkResult(ctx context.Context, res entity.BulkProcessResult, rows []entity.BulkRow) (err error) {
	ctx, span := s.startSpan(ctx, "SaveBulkResult")
	defer func() { s.endSpan(span, err) }()

	tx, err := s.conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && !errors.Is(rErr, pgx.ErrTxClosed) {
			slog.ErrorContext(ctx, "failed to rolback", "error", rErr)
		}
	}()

	if _, err = tx.Exec(ctx, sqlDeleteBulkRows, res.ID); err != nil {
		return s.mapError(err)
	}

	if _, err = tx.CopyFrom(ctx,
		pgx.Identifier{"uservalidation_bulk_rows"},
		bulkRowColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.ID, res.ID, r.RowNumber, r.Payload, r.Valid, r.ErrorCode, r.ErrorMsg}, nil
		}),
	); err != nil {
		return s.mapError(err)
	}

	tag, err := tx.Exec(ctx, sqlFinishBulkProcess,
		res.ID, res.Status, res.Total, res.Valid, res.Invalid, res.FailedReason)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		err = goerror.ErrNotFound
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *DB) FailBulkProcess(ctx context.Context, id int64, reason string) (err error) {
	ctx, span := s.startSpan(ctx, "FailBulkProcess")
	defer func() { s.endSpan(span, err) }()

	tag, err := s.conn.Exec(ctx, sqlFinishBulkProcess, id, entity.BulkStatusFailed, 0, 0, 0, reason)
	if err != nil {
		return s.mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
