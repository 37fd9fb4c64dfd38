package repositories

import "github.com/thehfpv/backend/internal/domain/entities"

// VisitRepository records unique visits and answers aggregate counts.
type VisitRepository interface {
	// Record stores the visit unless the same IP was already seen on the
	// same day. It reports whether a new row was written.
	Record(visit *entities.Visit) (bool, error)
	CountByDate(date string) (int64, error)
	CountTotal() (int64, error)
}
