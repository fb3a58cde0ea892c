package playlist

import (
	"fmt"

	"github.com/google/uuid"
)

// newID returns an opaque identifier namespaced by entity type,
// e.g. "playlist-9f2c…". The prefix keeps ids self-describing in logs
// and across tables.
func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}
