package store

import "github.com/MKhiriev/brew-review/internal/logger"

// Storages groups the repositories sharing one connection pool.
type Storages struct {
	UserRepository   UserRepository
	ReviewRepository ReviewRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, logger),
		ReviewRepository: NewReviewRepository(db, logger),
	}
}
