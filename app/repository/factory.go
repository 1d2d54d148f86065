package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Factory builds the repository set lazily, once per database handle
type Factory struct {
	db    *gorm.DB
	once  sync.Once
	repos *Repositories
}

// NewFactory creates a factory for db
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// Repositories returns the shared repository set
func (f *Factory) Repositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

var (
	globalFactory *Factory
	factoryOnce   sync.Once
)

// InitializeFactory installs the process-wide factory; later calls are no-ops
func InitializeFactory(db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(db)
	})
}

// GetGlobalRepositories returns the repositories of the process-wide factory.
// It panics when InitializeFactory has not run.
func GetGlobalRepositories() *Repositories {
	if globalFactory == nil {
		panic("repository factory not initialized, call InitializeFactory first")
	}
	return globalFactory.Repositories()
}
