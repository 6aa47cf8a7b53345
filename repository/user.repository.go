package repository

import (
	"gorm.io/gorm"

	"casinohub/models"
)

// Users wraps all persistence operations for the User entity.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create inserts a new user. The unique index on email is enforced by
// the store; a duplicate email comes back as ErrDuplicate.
func (r *Users) Create(email, hashedPassword, name string) (*models.User, error) {
	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     name,
	}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *Users) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *Users) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Rename updates the display name and rereads the row so the returned
// entity reflects store-generated fields.
func (r *Users) Rename(id uint, name string) (*models.User, error) {
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Update("name", name).Error; err != nil {
		return nil, translate(err)
	}
	return r.FindByID(id)
}
