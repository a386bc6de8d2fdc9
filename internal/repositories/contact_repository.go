package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecotours/internal/models/db_models"
)

type ContactRepository interface {
	CrudRepository[db_models.Contact]
	// Latest returns the most recently created contact, nil when none exist.
	Latest(ctx context.Context) (*db_models.Contact, error)
}

type contactRepository struct {
	CrudRepository[db_models.Contact]
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{
		CrudRepository: NewCrudRepository[db_models.Contact](db),
		db:             db,
	}
}

func (r *contactRepository) Latest(ctx context.Context) (*db_models.Contact, error) {
	var contact db_models.Contact
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}
