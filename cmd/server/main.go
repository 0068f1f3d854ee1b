package main

import (
	"fmt"
	"log"
	"net/http"

	"seat-ticketing-platform/internal/config"
	"seat-ticketing-platform/internal/database"
	"seat-ticketing-platform/internal/handlers"
	"seat-ticketing-platform/internal/middleware"
	"seat-ticketing-platform/internal/repositories"
	"seat-ticketing-platform/internal/services"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()
	log.Println("Database connection established successfully")

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create session store for the cookie-backed cart
	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Server.Env == "production",
		SameSite: http.SameSiteLaxMode,
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db.DB)
	eventRepo := repositories.NewEventRepository(db.DB)
	venueRepo := repositories.NewVenueRepository(db.DB)
	seatRepo := repositories.NewSeatRepository(db.DB)
	ticketRepo := repositories.NewTicketRepository(db.DB)
	movementRepo := repositories.NewMovementRepository(db.DB)

	// Initialize services
	stripeService := services.NewStripeService(&cfg.Stripe)
	emailService := services.NewLogEmailService()
	fulfillmentService := services.NewFulfillmentService(movementRepo, ticketRepo, seatRepo, userRepo, stripeService, emailService)
	checkoutService := services.NewCheckoutService(stripeService, fulfillmentService, eventRepo, seatRepo, &cfg.Checkout)
	inventoryService := services.NewInventoryService(eventRepo, venueRepo, seatRepo)
	ordersService := services.NewOrdersService(movementRepo, ticketRepo, userRepo)

	// Initialize handlers
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, &cfg.Stripe)
	webhookHandler := handlers.NewWebhookHandler(stripeService, fulfillmentService)
	eventHandler := handlers.NewEventHandler(inventoryService)
	venueHandler := handlers.NewVenueHandler(inventoryService)
	seatHandler := handlers.NewSeatHandler(inventoryService)
	cartHandler := handlers.NewCartHandler(sessionStore, inventoryService)
	ordersHandler := handlers.NewOrdersHandler(ordersService)

	// Set up router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.ErrorHandlingMiddleware)
	r.Use(middleware.CORSMiddleware(middleware.DefaultCORSConfig()))

	r.NotFound(middleware.NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Route("/stripe", func(r chi.Router) {
			r.Get("/config", checkoutHandler.GetPublishableKey)
			r.Post("/create-checkout-session", checkoutHandler.CreateCheckoutSession)
			r.Post("/verify-payment", checkoutHandler.VerifyPayment)
			// The webhook needs the raw body for signature verification.
			r.Post("/webhook", webhookHandler.HandleWebhook)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.ListEvents)
			r.Post("/", eventHandler.CreateEvent)
			r.Get("/{id}", eventHandler.GetEvent)
			r.Put("/{id}", eventHandler.UpdateEvent)
			r.Delete("/{id}", eventHandler.DeleteEvent)
		})

		r.Route("/venues", func(r chi.Router) {
			r.Get("/", venueHandler.ListVenues)
			r.Post("/", venueHandler.CreateVenue)
			r.Get("/{id}", venueHandler.GetVenue)
			r.Get("/{id}/seats", venueHandler.GetVenueSeats)
		})

		r.Route("/movements", func(r chi.Router) {
			r.Get("/", ordersHandler.ListMovements)
			r.Get("/stats", ordersHandler.GetSalesStats)
		})

		r.Get("/users/{id}/tickets", ordersHandler.GetUserTickets)

		r.Post("/seats/update", seatHandler.UpdateSeats)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/", cartHandler.AddItem)
			r.Delete("/", cartHandler.RemoveItem)
			r.Get("/summary", cartHandler.GetCartSummary)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
