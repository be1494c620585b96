package inbound

import (
	"context"

	"github.com/shandysiswandi/userguard/internal/pkg/router"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"github.com/shandysiswandi/userguard/internal/uservalidation/usecase"
)

// ScopeBulk is the token scope required for bulk uploads and their results.
const ScopeBulk = "userguard.bulk"

type uc interface {
	Validate(ctx context.Context, in usecase.ValidateInput) error

	BulkUpload(ctx context.Context, in usecase.BulkUploadInput) (*usecase.BulkUploadOutput, error)
	BulkStatus(ctx context.Context, in usecase.BulkStatusInput) (*usecase.BulkStatusOutput, error)
	ProcessBulk(ctx context.Context, in usecase.ProcessBulkInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Single request validation
	r.POST("/api/v1/validation/users/create", end.operation(entity.OperationCreateUser))
	r.POST("/api/v1/validation/users/update", end.operation(entity.OperationUpdateUser))
	r.POST("/api/v1/validation/users/bulk-row", end.operation(entity.OperationBulkUserUpload))
	r.POST("/api/v1/validation/users/password/change", end.operation(entity.OperationChangePassword))
	r.POST("/api/v1/validation/users/password/forgot", end.operation(entity.OperationForgotPassword))
	r.POST("/api/v1/validation/users/verify", end.operation(entity.OperationVerifyUser))
	r.POST("/api/v1/validation/users/roles/assign", end.operation(entity.OperationAssignRole))
	r.POST("/api/v1/validation/users/profile-visibility", end.operation(entity.OperationProfileVisibility))
	r.POST("/api/v1/validation/users/validate/:operation", end.Validate)

	// Bulk upload (need scope)
	r.POST("/api/v1/validation/users/bulk", end.BulkUpload, router.RequireScope(ScopeBulk))
	r.GET("/api/v1/validation/users/bulk/:id", end.BulkStatus, router.RequireScope(ScopeBulk))
}
