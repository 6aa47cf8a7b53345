package repository

import (
	"gorm.io/gorm"

	"casinohub/models"
)

// Reviews wraps all persistence operations for the Review entity.
type Reviews struct {
	db *gorm.DB
}

func NewReviews(db *gorm.DB) *Reviews {
	return &Reviews{db: db}
}

// Create inserts a new review. Duplicate (user, casino) pairs are not
// pre-checked here: the insert goes straight into the composite unique
// index, so two concurrent inserts for the same pair cannot both
// succeed. The stars bound is validated at the request boundary; the
// check here and the store's CHECK constraint are defense in depth.
func (r *Reviews) Create(stars int, comment string, userID, casinoID uint) (*models.Review, error) {
	if stars < 1 || stars > 5 {
		return nil, ErrOutOfRange
	}

	review := models.Review{
		Stars:    stars,
		Comment:  comment,
		UserID:   userID,
		CasinoID: casinoID,
	}
	if err := r.db.Create(&review).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

// List returns a stable page of reviews ordered by id, optionally
// filtered by casino. The reviewer is preloaded so handlers can expose
// the display name without a live object graph.
func (r *Reviews) List(casinoID uint, offset, limit int) ([]models.Review, error) {
	query := r.db.Model(&models.Review{})
	if casinoID > 0 {
		query = query.Where("casino_id = ?", casinoID)
	}

	var reviews []models.Review
	err := query.
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}
