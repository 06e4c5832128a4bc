package repo

import "github.com/mworx/stockroom/internal/models"

// ActivityRepository is the append-only audit trail. Append trims history
// past models.ActivityCap; Recent returns entries newest first.
type ActivityRepository interface {
	Append(entry models.ActivityLog) error
	Recent(limit int) ([]models.ActivityLog, error)
}
