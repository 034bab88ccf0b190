package usecase

import (
	"reporting-srv/internal/officetransaction"
	"reporting-srv/internal/officetransaction/repository"
	"reporting-srv/pkg/log"
)

type implUseCase struct {
	repo repository.PostgresRepository
	l    log.Logger
}

func New(repo repository.PostgresRepository, l log.Logger) officetransaction.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
