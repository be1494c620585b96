package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/pkg/jwt"
	"github.com/shandysiswandi/userguard/internal/pkg/payload"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
validation:
  bulk:
    max_rows: 3
    max_bytes: 2048
`

const goodCSV = `username,firstName,email,roles,phone,phoneVerified
amit,Amit,amit@example.com,"PUBLIC, ADMIN",,
,Ravi,ravi@example.com,,,
sita,Sita,,,8123456789,true
`

func codeOf(t *testing.T, err error) goerror.Code {
	t.Helper()
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	return gerr.Code()
}

func TestValidate(t *testing.T) {
	f := newFixture(t, baseConfig)
	ctx := context.Background()

	t.Run("Valid", func(t *testing.T) {
		err := f.uc.Validate(ctx, ValidateInput{
			Operation: "createUser",
			Request:   payload.Object{}.Set("username", "amit").Set("firstName", "Amit").Set("email", "amit@example.com"),
		})
		assert.NoError(t, err)
	})

	t.Run("OperationIsCaseInsensitive", func(t *testing.T) {
		err := f.uc.Validate(ctx, ValidateInput{
			Operation: "VERIFYUSER",
			Request:   payload.Object{}.Set("loginId", "amit"),
		})
		assert.NoError(t, err)
	})

	t.Run("Violation", func(t *testing.T) {
		err := f.uc.Validate(ctx, ValidateInput{Operation: "forgotPassword", Request: payload.Object{}})

		var violation *entity.Violation
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, entity.UserNameRequired.Code, violation.Code)
		assert.Equal(t, goerror.CodeClient, codeOf(t, err))
	})

	t.Run("UnknownOperation", func(t *testing.T) {
		err := f.uc.Validate(ctx, ValidateInput{Operation: "deleteUser"})
		assert.Equal(t, goerror.CodeInvalidFormat, codeOf(t, err))
	})

	t.Run("OperationRequired", func(t *testing.T) {
		err := f.uc.Validate(ctx, ValidateInput{})
		assert.Equal(t, goerror.CodeInvalidInput, codeOf(t, err))
	})
}

func TestBulkUpload(t *testing.T) {
	ctx := jwt.SetAuth(context.Background(), jwt.Claims{})

	t.Run("Queued", func(t *testing.T) {
		f := newFixture(t, baseConfig)

		out, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.csv", File: strings.NewReader(goodCSV)})
		require.NoError(t, err)
		assert.Equal(t, int64(101), out.ProcessID)
		assert.Equal(t, 3, out.Rows)

		key := "uservalidation/bulk/abc123.csv"
		assert.Equal(t, goodCSV, string(f.storage.objects[key]))
		assert.Equal(t, entity.BulkStatusQueued, f.db.processes[101].Status)
		assert.Equal(t, []BulkRequestedEvent{{ProcessID: 101, ObjectKey: key}}, f.mq.requested)
	})

	t.Run("NotCSV", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		_, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.xlsx", File: strings.NewReader(goodCSV)})
		assert.Equal(t, goerror.CodeInvalidFormat, codeOf(t, err))
	})

	t.Run("TooManyRows", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		csv := goodCSV + "extra,Extra,extra@example.com,,,\n"

		_, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.csv", File: strings.NewReader(csv)})
		assert.Equal(t, goerror.CodeInvalidFormat, codeOf(t, err))
		assert.Empty(t, f.storage.objects)
	})

	t.Run("TooLarge", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		csv := "username\n" + strings.Repeat("a", 4096) + "\n"

		_, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.csv", File: strings.NewReader(csv)})
		var gerr *goerror.Error
		require.ErrorAs(t, err, &gerr)
		assert.Equal(t, "Bulk file is too large", gerr.Msg())
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		_, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.csv", File: strings.NewReader("username,email\n")})
		assert.Equal(t, goerror.CodeInvalidFormat, codeOf(t, err))
	})

	t.Run("RepoFailureRemovesFile", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		f.db.createErr = errors.New("db down")

		_, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.csv", File: strings.NewReader(goodCSV)})
		assert.Equal(t, goerror.CodeInternal, codeOf(t, err))
		assert.Empty(t, f.storage.objects)
	})

	t.Run("PublishFailureMarksFailed", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		f.mq.requestErr = errors.New("broker down")

		_, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.csv", File: strings.NewReader(goodCSV)})
		assert.Equal(t, goerror.CodeInternal, codeOf(t, err))
		assert.Equal(t, entity.BulkStatusFailed, f.db.processes[101].Status)
	})
}

func TestProcessBulk(t *testing.T) {
	ctx := context.Background()

	upload := func(t *testing.T, f *fixture, csv string) ProcessBulkInput {
		t.Helper()
		out, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.csv", File: strings.NewReader(csv)})
		require.NoError(t, err)
		return ProcessBulkInput{ProcessID: out.ProcessID, ObjectKey: f.mq.requested[0].ObjectKey}
	}

	t.Run("ValidatesEveryRow", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		in := upload(t, f, goodCSV)

		require.NoError(t, f.uc.ProcessBulk(ctx, in))

		proc := f.db.processes[in.ProcessID]
		assert.Equal(t, entity.BulkStatusCompleted, proc.Status)
		assert.Equal(t, int32(3), proc.Total)
		assert.Equal(t, int32(2), proc.Valid)
		assert.Equal(t, int32(1), proc.Invalid)

		rows := f.db.rows[in.ProcessID]
		require.Len(t, rows, 3)
		assert.True(t, rows[0].Valid)
		assert.Equal(t, []any{"PUBLIC", "ADMIN"}, rows[0].Payload["roles"])
		assert.False(t, rows[1].Valid)
		assert.Equal(t, int32(2), rows[1].RowNumber)
		assert.Equal(t, entity.MandatoryParamsMissing.Code, rows[1].ErrorCode)
		assert.True(t, rows[2].Valid)

		require.Len(t, f.mq.completed, 1)
		assert.Equal(t, BulkCompletedEvent{
			ProcessID: in.ProcessID,
			Status:    entity.BulkStatusCompleted,
			Total:     3,
			Valid:     2,
			Invalid:   1,
		}, f.mq.completed[0])
	})

	t.Run("RedeliveryIsIgnored", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		in := upload(t, f, goodCSV)

		require.NoError(t, f.uc.ProcessBulk(ctx, in))
		require.NoError(t, f.uc.ProcessBulk(ctx, in))
		assert.Len(t, f.mq.completed, 1)
	})

	t.Run("MissingFileFailsProcess", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		in := upload(t, f, goodCSV)
		delete(f.storage.objects, in.ObjectKey)

		require.NoError(t, f.uc.ProcessBulk(ctx, in))

		proc := f.db.processes[in.ProcessID]
		assert.Equal(t, entity.BulkStatusFailed, proc.Status)
		assert.Equal(t, "bulk file not found", proc.FailedReason)
		require.Len(t, f.mq.completed, 1)
		assert.Equal(t, entity.BulkStatusFailed, f.mq.completed[0].Status)
	})

	t.Run("UnknownProcessIsDropped", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		assert.NoError(t, f.uc.ProcessBulk(ctx, ProcessBulkInput{ProcessID: 9, ObjectKey: "x"}))
		assert.Empty(t, f.mq.completed)
	})

	t.Run("CompletedEventRetried", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		in := upload(t, f, goodCSV)
		f.mq.completeErrN = 2

		require.NoError(t, f.uc.ProcessBulk(ctx, in))
		assert.Len(t, f.mq.completed, 1)
	})

	t.Run("SaveFailureIsReturned", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		in := upload(t, f, goodCSV)
		f.db.saveErr = errors.New("db down")

		assert.Error(t, f.uc.ProcessBulk(ctx, in))
	})

	t.Run("RedeliveryAfterSaveFailureCompletes", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		in := upload(t, f, goodCSV)
		f.db.saveErr = errors.New("db down")

		require.Error(t, f.uc.ProcessBulk(ctx, in))
		assert.Equal(t, entity.BulkStatusProcessing, f.db.processes[in.ProcessID].Status)
		assert.Empty(t, f.mq.completed)

		f.db.saveErr = nil
		require.NoError(t, f.uc.ProcessBulk(ctx, in))

		proc := f.db.processes[in.ProcessID]
		assert.Equal(t, entity.BulkStatusCompleted, proc.Status)
		assert.Equal(t, int32(3), proc.Total)
		require.Len(t, f.mq.completed, 1)
		assert.Equal(t, entity.BulkStatusCompleted, f.mq.completed[0].Status)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		f := newFixture(t, baseConfig)
		err := f.uc.ProcessBulk(ctx, ProcessBulkInput{})
		assert.Equal(t, goerror.CodeInvalidInput, codeOf(t, err))
	})
}

func TestBulkStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, baseConfig)

	out, err := f.uc.BulkUpload(ctx, BulkUploadInput{FileName: "users.csv", File: strings.NewReader(goodCSV)})
	require.NoError(t, err)

	t.Run("Queued", func(t *testing.T) {
		st, err := f.uc.BulkStatus(ctx, BulkStatusInput{ProcessID: out.ProcessID})
		require.NoError(t, err)
		assert.Equal(t, entity.BulkStatusQueued, st.Status)
		assert.Empty(t, st.Rows)
	})

	require.NoError(t, f.uc.ProcessBulk(ctx, ProcessBulkInput{ProcessID: out.ProcessID, ObjectKey: f.mq.requested[0].ObjectKey}))

	t.Run("Completed", func(t *testing.T) {
		st, err := f.uc.BulkStatus(ctx, BulkStatusInput{ProcessID: out.ProcessID})
		require.NoError(t, err)
		assert.Equal(t, entity.BulkStatusCompleted, st.Status)
		assert.Len(t, st.Rows, 3)
	})

	t.Run("InvalidOnly", func(t *testing.T) {
		st, err := f.uc.BulkStatus(ctx, BulkStatusInput{ProcessID: out.ProcessID, InvalidOnly: true})
		require.NoError(t, err)
		require.Len(t, st.Rows, 1)
		assert.Equal(t, int32(2), st.Rows[0].RowNumber)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.uc.BulkStatus(ctx, BulkStatusInput{ProcessID: 404})
		assert.Equal(t, goerror.CodeNotFound, codeOf(t, err))
	})
}
