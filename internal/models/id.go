package models

import (
	"strconv"

	"github.com/google/uuid"
)

// DisplayID derives the legacy integer id shown in the UI from the first 8
// hex characters of the UUID. It is lossy and not guaranteed unique, so it
// must never be used as a lookup key; the UUID is canonical.
func DisplayID(id uuid.UUID) int64 {
	s := id.String()[:8]
	n, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0
	}
	return n
}
