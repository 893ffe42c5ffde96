package booking

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/interviewbook/interviewbook-server/cmd/models"
	"github.com/interviewbook/interviewbook-server/cmd/utils"
	"github.com/interviewbook/interviewbook-server/service/mailer"
	"gorm.io/gorm"
)

type BookingHandler struct {
	db     *gorm.DB
	mailer *mailer.Mailer
	hub    *models.Hub
}

func NewBookingHandler(db *gorm.DB, m *mailer.Mailer, hub *models.Hub) *BookingHandler {
	return &BookingHandler{db: db, mailer: m, hub: hub}
}

func (h *BookingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/bookings", h.CreateBooking).Methods("POST")
	router.HandleFunc("/bookings", utils.RequireAdmin(h.db, h.GetBookings)).Methods("GET")
	router.HandleFunc("/bookings/{id}/status", utils.RequireAdmin(h.db, h.UpdateBookingStatus)).Methods("PATCH")
	router.HandleFunc("/bookings/{id}/calendar", h.GetBookingCalendar).Methods("GET")
	router.HandleFunc("/bookings/{id}", utils.RequireAdmin(h.db, h.GetBooking)).Methods("GET")
}

// CreateBooking persists a candidate's reservation. The partial unique index
// on (booking_date, booking_time) over non-cancelled rows is the only
// double-booking defense; a concurrent insert for the same slot loses with a
// duplicate-key error and surfaces as a conflict.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var request createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateBookingRequest(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	booking := models.Booking{
		CandidateName:   request.CandidateName,
		CandidateEmail:  request.CandidateEmail,
		RoleApplied:     request.RoleApplied,
		BookingDate:     request.BookingDate,
		BookingTime:     request.BookingTime,
		DurationMinutes: 30,
		Status:          models.BookingScheduled,
	}
	if request.CandidatePhone != "" {
		booking.CandidatePhone = &request.CandidatePhone
	}
	if request.Notes != "" {
		booking.Notes = &request.Notes
	}

	if err := h.db.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			http.Error(w, "This time slot has already been booked", http.StatusConflict)
			return
		}
		http.Error(w, "Error creating booking", http.StatusInternalServerError)
		return
	}

	// Confirmation email is fire-and-forget: a dispatch failure is logged
	// and broadcast to the admin feed but never unwinds the booking.
	go func(id uuid.UUID) {
		if err := h.mailer.SendConfirmation(id); err != nil {
			log.Printf("Error sending confirmation email for booking %s: %v", id, err)
			h.broadcast(models.EventEmailFailed, map[string]string{
				"booking_id": id.String(),
				"error":      err.Error(),
			})
		}
	}(booking.ID)

	h.broadcast(models.EventBookingCreated, booking)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(booking)
}

func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	query := h.db.Model(&models.Booking{})

	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := r.URL.Query().Get("date"); date != "" {
		query = query.Where("booking_date = ?", date)
	}

	var bookings []models.Booking
	if err := query.Order("booking_date, booking_time").Find(&bookings).Error; err != nil {
		http.Error(w, "Error retrieving bookings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

// UpdateBookingStatus moves a booking into one of the terminal states.
// Only the status column changes; re-applying the same state is a no-op
// update rather than an error.
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	var request struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !validStatusTarget(request.Status) {
		http.Error(w, "Status must be completed, cancelled or no-show", http.StatusBadRequest)
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	if err := h.db.Model(&booking).Update("status", request.Status).Error; err != nil {
		http.Error(w, "Error updating booking status", http.StatusInternalServerError)
		return
	}

	h.broadcast(models.EventBookingStatusChanged, map[string]string{
		"booking_id": booking.ID.String(),
		"status":     request.Status,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(booking)
}

// GetBookingCalendar serves the confirmation page's "add to calendar" file.
func (h *BookingHandler) GetBookingCalendar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "Invalid booking ID", http.StatusBadRequest)
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, "id = ?", bookingID).Error; err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename="interview-booking.ics"`)
	w.Write([]byte(RenderICS(&booking)))
}

func (h *BookingHandler) broadcast(eventType string, payload interface{}) {
	if h.hub == nil {
		return
	}
	message, err := json.Marshal(models.Event{Type: eventType, Payload: payload})
	if err != nil {
		log.Printf("Error encoding %s event: %v", eventType, err)
		return
	}
	select {
	case h.hub.Broadcast <- message:
	default:
	}
}
