package repository

import (
	"errors"

	"github.com/unistack-app/unistack/internal/apperr"
	"gorm.io/gorm"
)

// guardedTables is the closed set of tables the ownership guard may
// touch. Keeping it closed means the table name can never come from
// client input.
var guardedTables = map[string]struct{}{
	"questions": {},
	"answers":   {},
	"comments":  {},
}

// OwnershipGuard checks that a mutating caller owns the row it is
// about to touch. Every update/delete handler runs this first.
type OwnershipGuard interface {
	// Verify returns nil when callerID owns the row, a NotFound error
	// when the row is absent and a Forbidden error on owner mismatch.
	Verify(table string, rowID, callerID uint) error
}

type ownershipGuard struct {
	db *gorm.DB
}

func NewOwnershipGuard(db *gorm.DB) OwnershipGuard {
	return &ownershipGuard{db: db}
}

func (g *ownershipGuard) Verify(table string, rowID, callerID uint) error {
	if _, ok := guardedTables[table]; !ok {
		return apperr.New(apperr.Internal, "Internal server error")
	}

	var row struct{ UserID uint }
	err := g.db.Table(table).Select("user_id").Where("id = ?", rowID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, "Record not found")
	}
	if err != nil {
		return apperr.Wrap(apperr.Internal, "Internal server error", err)
	}
	if row.UserID != callerID {
		return apperr.New(apperr.Forbidden, "Forbidden")
	}
	return nil
}
