package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/models"
)

// GormRepository implements store.Repository for any gorm model whose
// primary key column is "id" and which carries a created_at column.
type GormRepository[T any] struct {
	db *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *GormRepository[T]) Get(
	ctx context.Context,
	id string,
) (*T, error) {

	var entity T
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *GormRepository[T]) GetByAttribute(
	ctx context.Context,
	name string,
	value any,
) (*T, error) {

	var entity T
	if err := r.db.WithContext(ctx).
		Where(eq(name, value)).
		First(&entity).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *GormRepository[T]) ListByAttribute(
	ctx context.Context,
	name string,
	value any,
) ([]T, error) {

	var out []T
	if err := r.db.WithContext(ctx).
		Where(eq(name, value)).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *GormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *GormRepository[T]) Add(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(entity).Error)
}

func (r *GormRepository[T]) Update(
	ctx context.Context,
	id string,
	fields store.Fields,
) error {

	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(map[string]any(fields))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *GormRepository[T]) DeleteByAttribute(
	ctx context.Context,
	name string,
	value any,
) error {
	return translate(r.db.WithContext(ctx).
		Where(eq(name, value)).
		Delete(new(T)).Error)
}

func eq(column string, value any) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: column}, Value: value}
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
	default:
		return err
	}
}

// Compile-time check
var _ store.Repository[models.User] = (*GormRepository[models.User])(nil)
