package event

const UserValidationBulkRequestedDestination string = "uservalidation_bulk_requested"
const UserValidationBulkRequestedConsumerProcessor string = "uservalidation_bulk_requested_processor"

// UserValidationBulkRequestedMessage asks a worker to validate an uploaded file.
type UserValidationBulkRequestedMessage struct {
	ProcessID int64  `json:"process_id,string"`
	ObjectKey string `json:"object_key"`
}

const UserValidationBulkCompletedDestination string = "uservalidation_bulk_completed"

type UserValidationBulkCompletedMessage struct {
	ProcessID    int64  `json:"process_id,string"`
	Status       string `json:"status"`
	Total        int32  `json:"total"`
	Valid        int32  `json:"valid"`
	Invalid      int32  `json:"invalid"`
	FailedReason string `json:"failed_reason,omitempty"`
}
