package uid

import "github.com/google/uuid"

// UUID hands out time-ordered UUIDv7 strings. They are used as bulk process
// ids, correlation ids and JWT ids, so ordering by id follows creation time.
type UUID struct{}

func NewUUID() *UUID { return &UUID{} }

func (*UUID) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	// clock read failure; a random id is still unique
	return uuid.NewString()
}
