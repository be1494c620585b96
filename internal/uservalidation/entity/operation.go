package entity

import "strings"

// Operation names a validation pipeline.
type Operation string

const (
	OperationCreateUser        Operation = "createUser"
	OperationUpdateUser        Operation = "updateUser"
	OperationBulkUserUpload    Operation = "bulkUserUpload"
	OperationChangePassword    Operation = "changePassword"
	OperationVerifyUser        Operation = "verifyUser"
	OperationAssignRole        Operation = "assignRole"
	OperationForgotPassword    Operation = "forgotPassword"
	OperationProfileVisibility Operation = "profileVisibility"
)

// Operations lists every supported pipeline in a stable order.
var Operations = []Operation{
	OperationCreateUser,
	OperationUpdateUser,
	OperationBulkUserUpload,
	OperationChangePassword,
	OperationVerifyUser,
	OperationAssignRole,
	OperationForgotPassword,
	OperationProfileVisibility,
}

// OperationFromString matches raw against the known names, ignoring case.
func OperationFromString(raw string) (Operation, bool) {
	raw = strings.TrimSpace(raw)
	for _, op := range Operations {
		if strings.EqualFold(string(op), raw) {
			return op, true
		}
	}
	return "", false
}

func (o Operation) String() string {
	return string(o)
}

// ExternalIDMode selects how external identities are checked.
type ExternalIDMode int8

const (
	ExternalIDModeCreate ExternalIDMode = iota
	ExternalIDModeUpdate
	ExternalIDModeBulk
)

// External identity operations.
const (
	ExternalIDOperationAdd    = "add"
	ExternalIDOperationRemove = "remove"
	ExternalIDOperationEdit   = "edit"
)

// Address contexts passed to the address validator.
const (
	AddressContextAddress    = KeyAddress
	AddressContextEducation  = KeyEducation
	AddressContextJobProfile = KeyJobProfile
)

// AddressTypes is the closed set of accepted addType values. Matching is exact.
var AddressTypes = map[string]struct{}{
	"permanent":   {},
	"current":     {},
	"home":        {},
	"office":      {},
	"residential": {},
}

// IsAddressType reports whether s is an accepted address type.
func IsAddressType(s string) bool {
	_, ok := AddressTypes[s]
	return ok
}
