package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"translation-office/internal/entities"
	"translation-office/internal/repositories"
	"translation-office/pkg/constants"
	"translation-office/pkg/utils"
)

// SeedAdminUser creates or refreshes the bootstrap back-office account.
// Re-running is safe, the insert upserts on email.
func SeedAdminUser(pool *pgxpool.Pool, email, password, name string) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	userRepo := repositories.NewUserRepository(pool)
	user := &entities.User{
		Email:    email,
		Password: hashed,
		Name:     name,
		Role:     constants.RoleSuperAdmin,
	}
	if err := userRepo.Create(context.Background(), user); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Printf("admin user ready: %s (id=%d)", user.Email, user.ID)
}
