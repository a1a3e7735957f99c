package signals

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle identifies one subscription within the signal that issued it.
// Ids are never reused, so a handle keeps referring to the same
// subscription while others come and go, and is stale once removed.
// The zero Handle is empty.
type Handle struct {
	signal uuid.UUID
	id     uint64
}

func (h Handle) IsEmpty() bool {
	return h.id == 0
}

func (h Handle) String() string {
	if h.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%s#%d", h.signal, h.id)
}
