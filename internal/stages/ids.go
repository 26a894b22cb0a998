package stages

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

const idAttempts = 32

// GenerateID returns a fresh identifier of the form custom_<4 digits> that
// does not collide with any entry in existing. After idAttempts collisions
// it falls back to a uuid fragment, so the caller always gets a usable id
// even when the numeric range is saturated.
func GenerateID(existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	for i := 0; i < idAttempts; i++ {
		id := fmt.Sprintf("custom_%04d", 1000+rand.IntN(9000))
		if _, ok := taken[id]; !ok {
			return id
		}
	}
	return "custom_" + uuid.New().String()[:8]
}
