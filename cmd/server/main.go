package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"studiobooking/internal/api"
	"studiobooking/internal/auth"
	"studiobooking/internal/repository"
	"studiobooking/internal/service"
	"studiobooking/internal/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	utils.InitializeLogger()
	defer utils.GetLogger().Sync()

	baseURL := os.Getenv("BOOKING_API_BASE_URL")
	if baseURL == "" {
		log.Fatal("BOOKING_API_BASE_URL not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	ttl := time.Minute
	if raw := os.Getenv("SNAPSHOT_TTL_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			log.Fatalf("Invalid SNAPSHOT_TTL_SECONDS: %q", raw)
		}
		ttl = time.Duration(seconds) * time.Second
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	bookingRepo := repository.NewBookingAPIRepository(baseURL, httpClient)
	roomRepo := repository.NewRoomAPIRepository(baseURL, httpClient)
	cache := repository.NewSnapshotCache(rdb, ttl)

	availabilitySvc := service.NewAvailabilityService(roomRepo, bookingRepo, cache)
	bookingSvc := service.NewBookingService(availabilitySvc, bookingRepo, roomRepo, cache, service.NewSenderService())
	jobSvc := service.NewJobService(availabilitySvc, roomRepo)

	availabilityHandler := api.NewAvailabilityHandler(availabilitySvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	roomHandler := api.NewRoomHandler(availabilitySvc)
	opsHandler := api.NewOpsHandler(jobSvc, cache)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/rooms", roomHandler.ListRooms).Methods("GET")
	r.HandleFunc("/api/rooms/{id}/availability", availabilityHandler.GetAvailability).Methods("GET")
	r.HandleFunc("/api/rooms/{id}/availability/validate", availabilityHandler.ValidateCandidate).Methods("POST")
	r.HandleFunc("/api/rooms/{id}/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.CancelBooking).Methods("DELETE")

	// Ops endpoints (protected)
	ops := r.PathPrefix("/ops").Subrouter()
	ops.Use(auth.OpsAuthMiddleware)
	ops.HandleFunc("/cache/warm", opsHandler.WarmCache).Methods("POST")
	ops.HandleFunc("/cache/{roomID}", opsHandler.InvalidateRoom).Methods("DELETE")

	c := cron.New()
	if _, err := c.AddFunc("@every 5m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := jobSvc.WarmTodaySnapshots(ctx); err != nil {
			log.Printf("Cron job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule snapshot warming: %v", err)
	}
	c.Start()
	defer c.Stop()

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
