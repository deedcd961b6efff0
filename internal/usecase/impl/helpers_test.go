package impl

import (
	"io"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{TaxRate: "0.18"},
	}
}

func newTestSession() *entity.Session {
	now := time.Now()

	return &entity.Session{
		ID: "sess-1",
		User: entity.User{
			ID:    "u1",
			Name:  "Asha",
			Email: "asha@example.com",
			Phone: "9876543210",
			Role:  entity.RoleUser,
		},
		BackendToken: "backend-token",
		CreatedAt:    now,
		ExpiresAt:    now.Add(time.Hour),
	}
}

func testAddresses() []entity.Address {
	return []entity.Address{
		{ID: "A", Name: "Home", City: "Pune", IsDefault: false},
		{ID: "B", Name: "Office", City: "Mumbai", IsDefault: true},
	}
}
