package idgen

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Instance returns a UUIDv7 identifying one server process.
// If UUIDv7 generation fails, it falls back to a random UUIDv4.
func Instance() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Request returns a ULID for tagging a single request in log output.
// IDs from one process sort in creation order.
func Request() string {
	return ulid.Make().String()
}
