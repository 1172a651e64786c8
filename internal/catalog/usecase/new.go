package usecase

import (
	"wardrobe-catalog/internal/catalog/repository"
	"wardrobe-catalog/pkg/log"
)

// Config bounds what a single catalog call may return or accept.
type Config struct {
	MaxRecords   int // cap for caller-supplied records; 0 = unlimited
	DefaultLimit int // page size when the caller sends none; 0 = everything
	MaxLimit     int // upper bound on page size; 0 = unbounded
}

// implUseCase is the private implementation of catalog.UseCase.
type implUseCase struct {
	repo repository.Repository
	cfg  Config
	l    log.Logger
}

// New creates a new catalog UseCase implementation.
func New(repo repository.Repository, cfg Config, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		cfg:  cfg,
		l:    l,
	}
}
