package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/macroprep/backend/internal/models"
)

// UserStore is the pluggable user registry. Implementations must make
// concurrent mutations safe; lost updates are not acceptable.
type UserStore interface {
	Get(phone string) (*models.User, error)
	Upsert(user *models.User) error
}

// FileUserStore keeps the registry in a single flat JSON file mapping phone
// number to user record. Writes are serialized with a mutex and go through
// a temp file plus rename so a crash never leaves a partial registry.
type FileUserStore struct {
	path string
	mu   sync.Mutex
}

// NewFileUserStore creates a store backed by the given file path. The file
// is created on first write.
func NewFileUserStore(path string) *FileUserStore {
	return &FileUserStore{path: path}
}

func (s *FileUserStore) load() (map[string]models.User, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user registry: %w", err)
	}

	users := map[string]models.User{}
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse user registry: %w", err)
	}
	return users, nil
}

func (s *FileUserStore) save(users map[string]models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal user registry: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create registry directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "users-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp registry file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close registry file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace registry: %w", err)
	}
	return nil
}

// Get returns the user with the given phone number or ErrUserNotFound.
func (s *FileUserStore) Get(phone string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	user, ok := users[phone]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// Upsert creates or replaces the record for the user's phone number.
func (s *FileUserStore) Upsert(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	users[user.Phone] = *user
	return s.save(users)
}

// GormUserStore keeps the registry in a relational database.
type GormUserStore struct {
	db *gorm.DB
}

// NewGormUserStore migrates the users table and returns the store.
func NewGormUserStore(db *gorm.DB) (*GormUserStore, error) {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return nil, fmt.Errorf("failed to migrate users table: %w", err)
	}
	return &GormUserStore{db: db}, nil
}

// Get returns the user with the given phone number or ErrUserNotFound.
func (s *GormUserStore) Get(phone string) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, "phone = ?", phone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert creates or replaces the record for the user's phone number.
func (s *GormUserStore) Upsert(user *models.User) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		UpdateAll: true,
	}).Create(user).Error
}
