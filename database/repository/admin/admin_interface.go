package admin

import (
	"context"
	"errors"
	"time"

	"rent2reuse/models"
)

// ErrNotFound is returned when no admin record matches the lookup.
var ErrNotFound = errors.New("admin record not found")

// AdminRepository defines data access for the "admin" collection.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	GetByUID(ctx context.Context, uid string) (*models.AdminAccount, error)
	List(ctx context.Context) ([]models.AdminAccount, error)
	StampLastLogout(ctx context.Context, uid string, at time.Time) error
	UpdateStatus(ctx context.Context, uid string, status string) error
}
