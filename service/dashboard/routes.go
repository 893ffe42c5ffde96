package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/interviewbook/interviewbook-server/cmd/models"
	"github.com/interviewbook/interviewbook-server/cmd/utils"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/admin/stats", utils.RequireAdmin(h.db, h.GetStats)).Methods("GET")
}

// GetStats returns the dashboard counters: scheduled interviews today, in the
// next seven days, and all upcoming, plus the next five bookings.
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format("2006-01-02")
	weekEnd := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	scheduled := h.db.Model(&models.Booking{}).Where("status = ?", models.BookingScheduled)

	var todayCount int64
	if err := scheduled.Session(&gorm.Session{}).
		Where("booking_date = ?", today).Count(&todayCount).Error; err != nil {
		http.Error(w, "Error retrieving stats", http.StatusInternalServerError)
		return
	}

	var weekCount int64
	if err := scheduled.Session(&gorm.Session{}).
		Where("booking_date >= ? AND booking_date < ?", today, weekEnd).
		Count(&weekCount).Error; err != nil {
		http.Error(w, "Error retrieving stats", http.StatusInternalServerError)
		return
	}

	var totalUpcoming int64
	if err := scheduled.Session(&gorm.Session{}).
		Where("booking_date >= ?", today).Count(&totalUpcoming).Error; err != nil {
		http.Error(w, "Error retrieving stats", http.StatusInternalServerError)
		return
	}

	var upcoming []models.Booking
	if err := h.db.Where("booking_date >= ? AND status = ?", today, models.BookingScheduled).
		Order("booking_date, booking_time").Limit(5).Find(&upcoming).Error; err != nil {
		http.Error(w, "Error retrieving stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"today":          todayCount,
		"week":           weekCount,
		"total_upcoming": totalUpcoming,
		"upcoming":       upcoming,
	})
}
