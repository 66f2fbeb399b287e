package render

import (
	"time"

	"github.com/couchcryptid/ejc-map/internal/domain"
)

// MapView is the prepared data handed to the renderers: annotated records in
// dataset (chronological) order plus the run's output dimensions.
type MapView struct {
	Records     []domain.AnnotatedRecord
	Width       int
	Height      int
	GeneratedAt time.Time
}
