package repository

import (
	"context"

	"oficina_xpto/internal/domain/entities"
	"oficina_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed queries read the highest number already in use, so rows written before the
// sequences table existed are never handed out again.
var defaultSeedQueries = map[string]string{
	entities.BudgetNumberSequence: "SELECT COALESCE(MAX(number), 0) FROM budgets",
	entities.ServiceCodeSequence:  "SELECT COALESCE(MAX(CAST(SUBSTR(id, 2) AS INTEGER)), 0) FROM services WHERE id LIKE 'S%'",
}

// SequenceGormRepository allocates numbers from the sequences table. The increment is a
// single UPDATE, so it joins the caller's transaction and serializes on the row lock.
type SequenceGormRepository struct {
	gormBase
	seeds map[string]string
}

var _ interfaces.ISequence = (*SequenceGormRepository)(nil)

func NewSequenceGormRepository(db *gorm.DB) *SequenceGormRepository {
	return &SequenceGormRepository{gormBase: gormBase{db: db}, seeds: defaultSeedQueries}
}

func (r *SequenceGormRepository) Next(ctx context.Context, name string, floor int64) (int64, error) {
	db := r.conn(ctx)
	if err := r.seed(db, name, floor); err != nil {
		return 0, translateError("seed sequence", err)
	}

	var value int64
	err := db.Raw("UPDATE sequences SET value = value + 1 WHERE name = ? RETURNING value", name).Scan(&value).Error
	if err != nil {
		return 0, translateError("next sequence value", err)
	}
	return value, nil
}

// seed inserts the row once with max(floor, highest existing number).
func (r *SequenceGormRepository) seed(db *gorm.DB, name string, floor int64) error {
	var exists int64
	if err := db.Model(&sequenceModel{}).Where("name = ?", name).Count(&exists).Error; err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	used, err := r.highWaterMark(db, name)
	if err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&sequenceModel{Name: name, Value: max(floor, used)}).Error
}

// HighWaterMark returns the highest number already stored for name, or 0 when the
// sequence has no backing table. Other sequence backends seed themselves from it.
func (r *SequenceGormRepository) HighWaterMark(ctx context.Context, name string) (int64, error) {
	used, err := r.highWaterMark(r.conn(ctx), name)
	if err != nil {
		return 0, translateError("read sequence high water mark", err)
	}
	return used, nil
}

func (r *SequenceGormRepository) highWaterMark(db *gorm.DB, name string) (int64, error) {
	q, ok := r.seeds[name]
	if !ok {
		return 0, nil
	}
	var used int64
	if err := db.Raw(q).Scan(&used).Error; err != nil {
		return 0, err
	}
	return used, nil
}
