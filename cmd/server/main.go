package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/LoafLife/loaf-life-reservations/internal/api"
	"github.com/LoafLife/loaf-life-reservations/internal/auth"
	"github.com/LoafLife/loaf-life-reservations/internal/catalog"
	"github.com/LoafLife/loaf-life-reservations/internal/ledger"
	"github.com/LoafLife/loaf-life-reservations/internal/notify"
	"github.com/LoafLife/loaf-life-reservations/internal/payment"
	"github.com/LoafLife/loaf-life-reservations/internal/repository"
	"github.com/LoafLife/loaf-life-reservations/internal/service"
)

func main() {
	godotenv.Load()

	ledgerStore := ledger.New(catalog.CapacityFor)
	bookings := repository.NewBookingRepository()

	var processor payment.Processor
	switch os.Getenv("PAYMENT_PROVIDER") {
	case "stripe":
		key := os.Getenv("STRIPE_SECRET_KEY")
		if key == "" {
			log.Fatal("STRIPE_SECRET_KEY not set")
		}
		processor = payment.NewStripeProcessor(key)
	default:
		sim := payment.NewSimulated(2 * time.Second)
		sim.Decline = os.Getenv("PAYMENT_SIMULATE_FAILURE") == "true"
		processor = sim
	}

	var notifier notify.AccessCodeNotifier
	switch os.Getenv("SMS_PROVIDER") {
	case "twilio":
		notifier = notify.NewTwilioNotifier()
	default:
		notifier = notify.NewSimulated(1 * time.Second)
	}

	var emailer notify.EmailSender
	if os.Getenv("EMAIL_ENABLED") == "true" {
		emailer = notify.NewSendGridSender()
	}

	svc := service.NewBookingService(ledgerStore, bookings, processor, notifier, emailer)
	jobSvc := service.NewJobService(ledgerStore)

	bookingHandler := api.NewBookingHandler(svc)
	adminHandler := api.NewAdminHandler(svc)
	adminAuthHandler := api.NewAdminAuthHandler(service.NewAdminAuthService())

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/health", bookingHandler.Health).Methods("GET")
	r.HandleFunc("/api/passes", bookingHandler.ListPasses).Methods("GET")
	r.HandleFunc("/api/calendar", bookingHandler.GetCalendar).Methods("GET")
	r.HandleFunc("/api/availability", bookingHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/prices", bookingHandler.GetQuote).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings/{code}", bookingHandler.GetBooking).Methods("GET")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/occupancy", adminHandler.Occupancy).Methods("GET")
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")

	c := cron.New()
	if _, err := c.AddFunc("@daily", jobSvc.PruneExpiredDates); err != nil {
		log.Fatalf("Failed to schedule prune job: %v", err)
	}
	c.Start()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
