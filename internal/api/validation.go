package api

import (
	"fmt"
	"strconv"

	"github.com/Ayato964/RunMeMe/internal/stages"
)

// defaultStageCount is how many stages a sequence request returns when the
// client does not ask for a specific count.
const defaultStageCount = 20

// ValidateStage checks a submitted stage definition. Checks are type-level
// only; stage geometry is deliberately not validated.
func ValidateStage(stage *stages.Stage) error {
	if stage.Width <= 0 {
		return fmt.Errorf("width must be positive")
	}
	for i, el := range stage.Elements {
		if el.Type == "" {
			return fmt.Errorf("elements[%d]: type is required", i)
		}
	}
	return nil
}

// parseCount parses the count query parameter, defaulting when absent.
func parseCount(raw string) (int, error) {
	if raw == "" {
		return defaultStageCount, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("count must be an integer")
	}
	if n <= 0 {
		return 0, fmt.Errorf("count must be positive")
	}
	return n, nil
}
