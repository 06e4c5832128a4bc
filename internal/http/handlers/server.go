package handlers

import (
	"github.com/mworx/stockroom/internal/inventory"
	"github.com/mworx/stockroom/internal/repo"
)

var (
	svc      *inventory.Service
	userRepo repo.UserRepository
)

func SetInventoryService(s *inventory.Service) {
	svc = s
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}
