package store

import (
	"errors"

	"github.com/certitrack/backend/models"
	"gorm.io/gorm"
)

// Records provides access to the certification-record collection.
type Records struct {
	db *gorm.DB
}

func NewRecords(db *gorm.DB) *Records {
	return &Records{db: db}
}

func (s *Records) Create(record *models.Record) error {
	return s.db.Create(record).Error
}

// List returns records newest first. A zero userID lists everything.
func (s *Records) List(userID uint) ([]models.Record, error) {
	query := s.db.Order("date_created DESC")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}
	var records []models.Record
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Records) ByID(id uint) (*models.Record, error) {
	var record models.Record
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (s *Records) Update(record *models.Record) error {
	return s.db.Save(record).Error
}

func (s *Records) Delete(id uint) error {
	result := s.db.Delete(&models.Record{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
