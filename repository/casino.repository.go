package repository

import (
	"gorm.io/gorm"

	"casinohub/models"
)

// Casinos wraps all persistence operations for the Casino entity.
type Casinos struct {
	db *gorm.DB
}

func NewCasinos(db *gorm.DB) *Casinos {
	return &Casinos{db: db}
}

// Create inserts a new casino. The unique index on name is enforced by
// the store; a duplicate name comes back as ErrDuplicate.
func (r *Casinos) Create(name string) (*models.Casino, error) {
	casino := models.Casino{Name: name}
	if err := r.db.Create(&casino).Error; err != nil {
		return nil, translate(err)
	}
	return &casino, nil
}

func (r *Casinos) FindByID(id uint) (*models.Casino, error) {
	var casino models.Casino
	if err := r.db.First(&casino, id).Error; err != nil {
		return nil, translate(err)
	}
	return &casino, nil
}

// List returns a stable page of casinos ordered by id.
func (r *Casinos) List(offset, limit int) ([]models.Casino, error) {
	var casinos []models.Casino
	if err := r.db.Order("id ASC").Offset(offset).Limit(limit).Find(&casinos).Error; err != nil {
		return nil, translate(err)
	}
	return casinos, nil
}
