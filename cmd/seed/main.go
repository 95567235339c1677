package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"keepsake/internal/cart"
	"keepsake/internal/shared/config"
	"keepsake/internal/shipping"
	"keepsake/pkg/cache"

	"github.com/joho/godotenv"
)

// Seeds a demo cart session into Redis so the widget has something to mount
// against during local development.
func main() {
	fmt.Println("🌱 Starting Keepsake cart seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	redisClient, err := cache.NewClient(cache.Config{
		Address:  cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	store := cart.NewStore(cache.NewService(redisClient), cfg.Redis.CartSessionTTL, cfg.Redis.OrderRecordTTL)

	session := cart.Session{
		Cart: cart.Cart{
			SessionKey:      "demo-session-001",
			ConstituentID:   "constituent-8841",
			EventName:       "An Evening of Gershwin",
			PerformanceDate: "2026-09-12T19:30:00Z",
			Venue:           "Main Stage",
			Seats: []cart.Seat{
				{Section: "Orchestra", Row: "B", SeatNumber: "13", Price: 85, SeatID: "orch-b-13"},
				{Section: "Orchestra", Row: "B", SeatNumber: "14", Price: 85, SeatID: "orch-b-14"},
				{Section: "Orchestra", Row: "B", SeatNumber: "15", Price: 85, SeatID: "orch-b-15"},
			},
			TicketTotal: 255,
		},
		AddressOnFile: &shipping.Address{
			Name:       "Jordan Patel",
			Street1:    "450 W 42nd St",
			Street2:    "Apt 12F",
			City:       "New York",
			State:      "NY",
			PostalCode: "10036",
			Country:    "US",
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := store.SaveSession(ctx, session); err != nil {
		log.Fatalf("Failed to seed cart session: %v", err)
	}

	fmt.Printf("✅ Seeded cart session %q (%d seats, on-file address for %s)\n",
		session.Cart.SessionKey, len(session.Cart.Seats), session.AddressOnFile.Name)
	fmt.Printf("   Try: curl 'http://localhost:%s%s/cart?sessionKey=%s'\n",
		cfg.Port, cfg.GetAPIBasePath(), session.Cart.SessionKey)
}
