package models

import "time"

// Review is a single user's rating of a casino. The composite unique
// index makes the store reject a second review for the same
// (user, casino) pair at commit time.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Stars     int       `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
	Comment   string    `gorm:"type:text;default:''" json:"comment"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_reviews_user_casino" json:"user_id"`
	CasinoID  uint      `gorm:"not null;uniqueIndex:idx_reviews_user_casino" json:"casino_id"`

	// Relations
	User   User   `gorm:"foreignKey:UserID" json:"-"`
	Casino Casino `gorm:"foreignKey:CasinoID" json:"-"`
}
