package api

import (
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/interviewbook/interviewbook-server/cmd/models"
	"github.com/interviewbook/interviewbook-server/service/availability"
	"github.com/interviewbook/interviewbook-server/service/booking"
	"github.com/interviewbook/interviewbook-server/service/dashboard"
	"github.com/interviewbook/interviewbook-server/service/mailer"
	"github.com/interviewbook/interviewbook-server/service/settings"
	"github.com/interviewbook/interviewbook-server/service/user"
	"github.com/interviewbook/interviewbook-server/service/ws"
	"gorm.io/gorm"
)

type APIServer struct {
	address string
	db      *gorm.DB
}

func NewApiServer(address string, db *gorm.DB) *APIServer {
	return &APIServer{
		address: address,
		db:      db,
	}
}

func (s *APIServer) Run() error {
	router := mux.NewRouter()
	subrouter := router.PathPrefix("/api/v1").Subrouter()

	hub := models.NewHub()
	go hub.Run()

	userHandler := user.NewHandler(s.db)
	userHandler.RegisterRoutes(subrouter)

	availabilityHandler := availability.NewAvailabilityHandler(s.db)
	availabilityHandler.RegisterRoutes(subrouter)

	bookingMailer := mailer.NewMailer(s.db)
	bookingHandler := booking.NewBookingHandler(s.db, bookingMailer, hub)
	bookingHandler.RegisterRoutes(subrouter)

	settingsHandler := settings.NewSettingsHandler(s.db)
	settingsHandler.RegisterRoutes(subrouter)

	dashboardHandler := dashboard.NewDashboardHandler(s.db)
	dashboardHandler.RegisterRoutes(subrouter)

	eventsHandler := ws.NewEventsHandler(s.db, hub)
	eventsHandler.RegisterRoutes(subrouter)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	log.Println("Server running at", s.address)
	return http.ListenAndServe(s.address, cors(router))
}
