package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/userguard/internal/pkg/goerror"
	"github.com/shandysiswandi/userguard/internal/pkg/router"
	"github.com/shandysiswandi/userguard/internal/uservalidation/entity"
	"github.com/shandysiswandi/userguard/internal/uservalidation/usecase"
)

// HTTPEndpoint exposes the validation pipelines and bulk uploads over HTTP.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) decodeEnvelope(r *router.Request) (*ValidateRequest, error) {
	var req ValidateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}
	if req.Request == nil {
		return nil, goerror.NewInvalidFormat("Request object is required")
	}
	return &req, nil
}

// operation binds a fixed pipeline to a route. The swag docs live on Validate
// since every fixed route shares its contract.
func (h *HTTPEndpoint) operation(op entity.Operation) router.Handler {
	return func(r *router.Request) (any, error) {
		req, err := h.decodeEnvelope(r)
		if err != nil {
			return nil, err
		}

		return nil, h.uc.Validate(r.Context(), usecase.ValidateInput{
			Operation: op.String(),
			Request:   req.Request,
		})
	}
}

// Validate runs the pipeline named by the path.
// @Summary Validate a user request
// @Description Runs the named validation pipeline against the request object. Fixed routes such as /create and /update behave the same for their operation.
// @Tags Validation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param operation path string true "Operation name" Enums(createUser, updateUser, bulkUserUpload, changePassword, verifyUser, assignRole, forgotPassword, profileVisibility)
// @Param request body ValidateRequest true "Request envelope"
// @Success 204 "Request is valid"
// @Failure 400 {object} router.errorResponse "Rule violation or unknown operation" example:{"message":"Mandatory parameter username is missing.","error":{"code":"USERNAME_MISSING","status":"CLIENT_ERROR","responseCode":"400"}}
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/validation/users/validate/{operation} [post]
func (h *HTTPEndpoint) Validate(r *router.Request) (any, error) {
	req, err := h.decodeEnvelope(r)
	if err != nil {
		return nil, err
	}

	return nil, h.uc.Validate(r.Context(), usecase.ValidateInput{
		Operation: r.GetParam("operation"),
		Request:   req.Request,
	})
}

// BulkUpload accepts a CSV of users for asynchronous validation.
// @Summary Upload users for bulk validation
// @Description Stores the CSV file and queues a job that validates every row with the bulkUserUpload pipeline.
// @Tags Validation, Bulk
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "CSV file with a header row of field names"
// @Success 202 {object} router.successResponse{data=BulkUploadResponse} "Bulk process queued"
// @Failure 400 {object} router.errorResponse "Invalid file"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 403 {object} router.errorResponse "Insufficient scope"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/validation/users/bulk [post]
func (h *HTTPEndpoint) BulkUpload(r *router.Request) (any, error) {
	part, err := r.StreamSingleFile("file")
	if err != nil {
		return nil, err
	}
	defer part.Close()

	out, err := h.uc.BulkUpload(r.Context(), usecase.BulkUploadInput{
		FileName: part.FileName(),
		File:     part,
	})
	if err != nil {
		return nil, err
	}

	return BulkUploadResponse{ProcessID: out.ProcessID, Rows: out.Rows}, nil
}

// BulkStatus reports a bulk process and, once completed, its row results.
// @Summary Bulk validation result
// @Description Returns the process status. Rows are included when the process is completed; invalid_only keeps only failed rows.
// @Tags Validation, Bulk
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Param invalid_only query bool false "Only rows that failed validation"
// @Success 200 {object} router.successResponse{data=BulkStatusResponse} "Bulk process"
// @Failure 400 {object} router.errorResponse "Invalid process id"
// @Failure 403 {object} router.errorResponse "Insufficient scope"
// @Failure 404 {object} router.errorResponse "Bulk process not found"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/validation/users/bulk/{id} [get]
func (h *HTTPEndpoint) BulkStatus(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	invalidOnly, err := r.GetQueryBool("invalid_only")
	if err != nil {
		return nil, err
	}

	out, err := h.uc.BulkStatus(r.Context(), usecase.BulkStatusInput{
		ProcessID:   id,
		InvalidOnly: invalidOnly,
	})
	if err != nil {
		return nil, err
	}

	return BulkStatusResponse{
		ProcessID:    out.ProcessID,
		FileName:     out.FileName,
		Status:       out.Status.String(),
		Total:        out.Total,
		Valid:        out.Valid,
		Invalid:      out.Invalid,
		FailedReason: out.FailedReason,
		CreatedAt:    out.CreatedAt,
		UpdatedAt:    out.UpdatedAt,
		Rows: lo.Map(out.Rows, func(row entity.BulkRow, _ int) BulkRowResponse {
			return BulkRowResponse{
				RowNumber: row.RowNumber,
				Valid:     row.Valid,
				ErrorCode: row.ErrorCode,
				ErrorMsg:  row.ErrorMsg,
				Payload:   row.Payload,
			}
		}),
	}, nil
}
