package handlers

import "github.com/certitrack/backend/models"

// UserStore is the slice of the store the auth and user-admin handlers need.
type UserStore interface {
	Create(user *models.User) error
	ByEmail(email string) (*models.User, error)
	ByID(id uint) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	UpdatePassword(id uint, passwordHash string) error
	Delete(id uint) error
}

// RecordStore is the slice of the store the record handlers need.
type RecordStore interface {
	Create(record *models.Record) error
	List(userID uint) ([]models.Record, error)
	ByID(id uint) (*models.Record, error)
	Update(record *models.Record) error
	Delete(id uint) error
}

// EventPublisher emits record lifecycle events. Satisfied by services.EventHub.
type EventPublisher interface {
	Publish(eventType string, recordID, actorID uint) error
}
