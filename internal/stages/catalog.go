package stages

import "errors"

var (
	ErrNotFound  = errors.New("stage not found")
	ErrNoCatalog = errors.New("stage catalog unavailable")
)

// Catalog resolves stage identifiers to definitions. List is read fresh on
// every call so a new submission is visible to the next request without any
// cache invalidation.
type Catalog interface {
	List() ([]string, error)
	Load(id string) (*Stage, error)
	Save(stage *Stage) error
	Close() error
}
