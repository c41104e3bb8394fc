package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/leminh-ng/book-catalog/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
	now  func() time.Time
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}
