package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store hands out repositories that all run against the same *gorm.DB
type Store struct {
	db        *gorm.DB
	users     *UserRepository
	videos    *VideoRepository
	teams     *TeamRepository
	languages *SubtitleLanguageRepository
	versions  *SubtitleVersionRepository
	tasks     *TaskRepository
}

// NewStore creates a store over db, which may itself be a transaction
func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		users:     NewUserRepository(db),
		videos:    NewVideoRepository(db),
		teams:     NewTeamRepository(db),
		languages: NewSubtitleLanguageRepository(db),
		versions:  NewSubtitleVersionRepository(db),
		tasks:     NewTaskRepository(db),
	}
}

func (s *Store) Users() UserRepositoryInterface                 { return s.users }
func (s *Store) Videos() VideoRepositoryInterface               { return s.videos }
func (s *Store) Teams() TeamRepositoryInterface                 { return s.teams }
func (s *Store) Languages() SubtitleLanguageRepositoryInterface { return s.languages }
func (s *Store) Versions() SubtitleVersionRepositoryInterface   { return s.versions }
func (s *Store) Tasks() TaskRepositoryInterface                 { return s.tasks }

// Transaction runs fn inside a database transaction. Any error returned by fn,
// or a panic, rolls back every write made through the store passed to fn.
func (s *Store) Transaction(ctx context.Context, fn func(tx StoreInterface) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// DB exposes the underlying handle for health checks
func (s *Store) DB() *gorm.DB {
	return s.db
}
