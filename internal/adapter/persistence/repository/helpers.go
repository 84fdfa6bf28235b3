package repository

import (
	"context"
	"errors"
	"strings"

	"oficina_xpto/internal/domain/entities"

	"gorm.io/gorm"
)

type txKey struct{}

// gormBase resolves the connection for a call: the transaction carried by ctx when there
// is one, the shared pool otherwise.
type gormBase struct {
	db *gorm.DB
}

func (b gormBase) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return b.db.WithContext(ctx)
}

// translateError maps driver failures onto the domain taxonomy. Unique violations become
// conflicts, everything else is a persistence error.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isDuplicateKey(err) {
		return &entities.DomainError{Kind: entities.ErrConflict, Code: "DUPLICATE", Message: op + ": duplicate key", Err: err}
	}
	return entities.Persistence(op, err)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// takeOne loads a single row into dest. found is false when nothing matched.
func takeOne(q *gorm.DB, dest any) (bool, error) {
	err := q.Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
