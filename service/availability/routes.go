package availability

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/interviewbook/interviewbook-server/cmd/models"
	"github.com/interviewbook/interviewbook-server/cmd/utils"
	"gorm.io/gorm"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

func (h *AvailabilityHandler) RegisterRoutes(router *mux.Router) {
	// Public endpoints feeding the booking calendar.
	router.HandleFunc("/availability/days", h.GetAvailableDays).Methods("GET")
	router.HandleFunc("/availability/blocked", h.GetBlockedDates).Methods("GET")
	router.HandleFunc("/availability/slots/{date}", h.GetSlotsByDate).Methods("GET")

	// Admin configuration.
	router.HandleFunc("/availability", utils.RequireAdmin(h.db, h.CreateSlot)).Methods("POST")
	router.HandleFunc("/availability", utils.RequireAdmin(h.db, h.GetSlots)).Methods("GET")
	router.HandleFunc("/availability/{id}/active", utils.RequireAdmin(h.db, h.UpdateSlotActive)).Methods("PATCH")
	router.HandleFunc("/availability/{id}", utils.RequireAdmin(h.db, h.DeleteSlot)).Methods("DELETE")
	router.HandleFunc("/availability/blocked", utils.RequireAdmin(h.db, h.CreateBlockedDate)).Methods("POST")
	router.HandleFunc("/availability/blocked/{id}", utils.RequireAdmin(h.db, h.DeleteBlockedDate)).Methods("DELETE")
}

func (h *AvailabilityHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	adminID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var slot models.AvailabilitySlot
	if err := json.NewDecoder(r.Body).Decode(&slot); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
		http.Error(w, "day_of_week must be between 0 and 6", http.StatusBadRequest)
		return
	}

	start, err := ParseTimeOfDay(slot.StartTime)
	if err != nil {
		http.Error(w, "Invalid start_time, use HH:MM", http.StatusBadRequest)
		return
	}
	end, err := ParseTimeOfDay(slot.EndTime)
	if err != nil {
		http.Error(w, "Invalid end_time, use HH:MM", http.StatusBadRequest)
		return
	}
	if end <= start {
		http.Error(w, "End time must be after start time", http.StatusBadRequest)
		return
	}
	if slot.SlotDurationMinutes <= 0 {
		slot.SlotDurationMinutes = 30
	}

	slot.AdminUserID = adminID
	slot.IsActive = true

	if err := h.db.Create(&slot).Error; err != nil {
		http.Error(w, "Error creating availability slot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(slot)
}

func (h *AvailabilityHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	var slots []models.AvailabilitySlot
	if err := h.db.Order("day_of_week, start_time").Find(&slots).Error; err != nil {
		http.Error(w, "Error retrieving availability slots", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

func (h *AvailabilityHandler) UpdateSlotActive(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid slot ID", http.StatusBadRequest)
		return
	}

	var request struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := h.db.Model(&models.AvailabilitySlot{}).Where("id = ?", slotID).
		Update("is_active", request.IsActive)
	if result.Error != nil {
		http.Error(w, "Error updating availability slot", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Availability slot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Availability slot updated",
	})
}

func (h *AvailabilityHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid slot ID", http.StatusBadRequest)
		return
	}

	result := h.db.Where("id = ?", slotID).Delete(&models.AvailabilitySlot{})
	if result.Error != nil {
		http.Error(w, "Error deleting availability slot", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Availability slot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Availability slot deleted",
	})
}

func (h *AvailabilityHandler) CreateBlockedDate(w http.ResponseWriter, r *http.Request) {
	adminID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var blocked models.BlockedDate
	if err := json.NewDecoder(r.Body).Decode(&blocked); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if _, err := time.Parse(dateLayout, blocked.BlockedDate); err != nil {
		http.Error(w, "Invalid date format. Use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	blocked.AdminUserID = adminID

	if err := h.db.Create(&blocked).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			http.Error(w, "Date is already blocked", http.StatusConflict)
			return
		}
		http.Error(w, "Error blocking date", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(blocked)
}

func (h *AvailabilityHandler) DeleteBlockedDate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	blockedID, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid blocked date ID", http.StatusBadRequest)
		return
	}

	result := h.db.Where("id = ?", blockedID).Delete(&models.BlockedDate{})
	if result.Error != nil {
		http.Error(w, "Error deleting blocked date", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Blocked date not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Blocked date deleted",
	})
}

// GetAvailableDays returns the distinct weekdays that have at least one
// active slot, so the calendar can disable everything else.
func (h *AvailabilityHandler) GetAvailableDays(w http.ResponseWriter, r *http.Request) {
	var days []int
	if err := h.db.Model(&models.AvailabilitySlot{}).
		Where("is_active = ?", true).
		Distinct("day_of_week").
		Order("day_of_week").
		Pluck("day_of_week", &days).Error; err != nil {
		http.Error(w, "Error retrieving available days", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"days": days,
	})
}

// GetBlockedDates returns blocked dates from a starting date onward,
// defaulting to today.
func (h *AvailabilityHandler) GetBlockedDates(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	if from == "" {
		from = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, from); err != nil {
		http.Error(w, "Invalid date format. Use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var blocked []models.BlockedDate
	if err := h.db.Where("blocked_date >= ?", from).
		Order("blocked_date").Find(&blocked).Error; err != nil {
		http.Error(w, "Error retrieving blocked dates", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(blocked)
}

// GetSlotsByDate runs the resolver for one calendar date.
func (h *AvailabilityHandler) GetSlotsByDate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date := vars["date"]
	if _, err := time.Parse(dateLayout, date); err != nil {
		http.Error(w, "Invalid date format. Use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	var rules []models.AvailabilitySlot
	if err := h.db.Where("is_active = ?", true).Find(&rules).Error; err != nil {
		http.Error(w, "Error retrieving availability", http.StatusInternalServerError)
		return
	}

	var blockedCount int64
	if err := h.db.Model(&models.BlockedDate{}).
		Where("blocked_date = ?", date).Count(&blockedCount).Error; err != nil {
		http.Error(w, "Error retrieving availability", http.StatusInternalServerError)
		return
	}

	var bookedTimes []string
	if err := h.db.Model(&models.Booking{}).
		Where("booking_date = ? AND status <> ?", date, models.BookingCancelled).
		Pluck("booking_time", &bookedTimes).Error; err != nil {
		http.Error(w, "Error retrieving availability", http.StatusInternalServerError)
		return
	}

	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = true
	}

	slots := ResolveSlots(date, time.Now(), rules, blockedCount > 0, booked)
	if slots == nil {
		slots = []TimeSlot{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"date":  date,
		"slots": slots,
	})
}
