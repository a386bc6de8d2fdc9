package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecotours/internal/infra"
	"ecotours/pkg/utils"
)

// CrudRepository persists a flat entity keyed by an auto-increment id.
// Read helpers return (nil, nil) when no row matches.
type CrudRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, page utils.Page) ([]T, error)
	// Update locks the row, lets mutate change it and saves it, all in one
	// transaction. A failing mutate rolls back and is returned unchanged.
	Update(ctx context.Context, id uint, mutate func(*T) error) (*T, error)
	// Delete removes the row and returns what was removed.
	Delete(ctx context.Context, id uint) (*T, error)
}

type CrudOption[T any] func(*crudRepository[T])

// WithBeforeSave runs check inside the write transaction of Create and Update.
func WithBeforeSave[T any](check func(tx *gorm.DB, entity *T) error) CrudOption[T] {
	return func(r *crudRepository[T]) {
		r.beforeSave = check
	}
}

type crudRepository[T any] struct {
	db         *gorm.DB
	beforeSave func(tx *gorm.DB, entity *T) error
}

func NewCrudRepository[T any](db *gorm.DB, opts ...CrudOption[T]) CrudRepository[T] {
	r := &crudRepository[T]{db: db}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *crudRepository[T]) check(tx *gorm.DB, entity *T) error {
	if r.beforeSave == nil {
		return nil
	}
	return r.beforeSave(tx, entity)
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.check(tx, entity); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(entity).Error
	})
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *crudRepository[T]) List(ctx context.Context, page utils.Page) ([]T, error) {
	entities := make([]T, 0)
	err := r.db.WithContext(ctx).
		Scopes(paginate(page)).
		Order("id ASC").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *crudRepository[T]) Update(ctx context.Context, id uint, mutate func(*T) error) (*T, error) {
	var updated *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entity T
		if err := infra.LockForUpdate(tx).First(&entity, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if err := mutate(&entity); err != nil {
			return err
		}
		if err := r.check(tx, &entity); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(&entity).Error; err != nil {
			return err
		}

		updated = &entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uint) (*T, error) {
	var deleted *T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entity T
		if err := infra.LockForUpdate(tx).First(&entity, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&entity).Error; err != nil {
			return err
		}
		deleted = &entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func paginate(page utils.Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.IsAll() {
			return db
		}
		return db.Offset(page.Offset()).Limit(page.Size)
	}
}
