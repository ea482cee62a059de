package handlers

import (
	"sort"
	"time"

	"github.com/certitrack/backend/models"
	"github.com/certitrack/backend/store"
)

// fakeUserStore mimics the real store, including the unique-email behavior
// of the database index: the insert itself reports the duplicate.
type fakeUserStore struct {
	nextID uint
	users  map[uint]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: make(map[uint]*models.User)}
}

func (f *fakeUserStore) Create(user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	user.ID = f.nextID
	f.nextID++
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	user.DateJoined = time.Now()
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) ByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) ByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) List() ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return store.ErrNotFound
	}
	for id, existing := range f.users {
		if id != user.ID && existing.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) UpdatePassword(id uint, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserStore) Delete(id uint) error {
	if _, ok := f.users[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeRecordStore struct {
	nextID  uint
	records map[uint]*models.Record
}

func newFakeRecordStore() *fakeRecordStore {
	return &fakeRecordStore{nextID: 1, records: make(map[uint]*models.Record)}
}

func (f *fakeRecordStore) Create(record *models.Record) error {
	record.ID = f.nextID
	f.nextID++
	record.DateCreated = time.Now()
	clone := *record
	f.records[record.ID] = &clone
	return nil
}

func (f *fakeRecordStore) List(userID uint) ([]models.Record, error) {
	records := make([]models.Record, 0, len(f.records))
	for _, r := range f.records {
		if userID != 0 && r.UserID != userID {
			continue
		}
		records = append(records, *r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].DateCreated.After(records[j].DateCreated)
	})
	return records, nil
}

func (f *fakeRecordStore) ByID(id uint) (*models.Record, error) {
	r, ok := f.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	clone := *r
	return &clone, nil
}

func (f *fakeRecordStore) Update(record *models.Record) error {
	if _, ok := f.records[record.ID]; !ok {
		return store.ErrNotFound
	}
	clone := *record
	f.records[record.ID] = &clone
	return nil
}

func (f *fakeRecordStore) Delete(id uint) error {
	if _, ok := f.records[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.records, id)
	return nil
}

// fakeEvents records published events for assertions.
type fakeEvents struct {
	published []publishedEvent
}

type publishedEvent struct {
	Type     string
	RecordID uint
	ActorID  uint
}

func (f *fakeEvents) Publish(eventType string, recordID, actorID uint) error {
	f.published = append(f.published, publishedEvent{eventType, recordID, actorID})
	return nil
}
