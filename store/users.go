package store

import (
	"errors"

	"github.com/certitrack/backend/models"
	"gorm.io/gorm"
)

// Users provides access to the user collection.
type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

// Create inserts a new user. A unique-index violation on email comes back
// as ErrDuplicateEmail; two concurrent registrations race at the database,
// where exactly one insert wins.
func (s *Users) Create(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *Users) ByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("date_joined DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update persists name/email/role/hash changes to an existing user.
func (s *Users) Update(user *models.User) error {
	err := s.db.Save(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

// UpdatePassword overwrites the stored hash for a user.
func (s *Users) UpdatePassword(id uint, passwordHash string) error {
	result := s.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user permanently. There is no soft delete.
func (s *Users) Delete(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
