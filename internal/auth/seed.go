package auth

import (
	"github.com/mworx/stockroom/internal/models"
	"github.com/mworx/stockroom/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

// demoUsers is the fixed account set; there is no registration path.
var demoUsers = []models.User{
	{ID: "1", Email: "admin@mworx.com", Name: "M-Worx Administrator", Role: models.RoleAdmin, IsActive: true},
	{ID: "2", Email: "manager@mworx.com", Name: "Inventory Manager", Role: models.RoleManager, IsActive: true},
	{ID: "3", Email: "staff@mworx.com", Name: "Stockroom Staff", Role: models.RoleUser, IsActive: true},
}

// SeedDemoUsers upserts the demo accounts with the shared password.
func SeedDemoUsers(users repo.UserRepository, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	for _, u := range demoUsers {
		u.PasswordHash = string(hashed)
		if _, err := users.Upsert(u); err != nil {
			return err
		}
	}
	return nil
}
