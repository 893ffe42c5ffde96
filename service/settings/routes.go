package settings

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/interviewbook/interviewbook-server/cmd/models"
	"github.com/interviewbook/interviewbook-server/cmd/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

func (h *SettingsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/settings/{key}", utils.RequireAdmin(h.db, h.GetSetting)).Methods("GET")
	router.HandleFunc("/settings/{key}", utils.RequireAdmin(h.db, h.UpsertSetting)).Methods("PUT")
}

func (h *SettingsHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	adminID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	key := mux.Vars(r)["key"]

	var setting models.AdminSetting
	if err := h.db.Where("admin_user_id = ? AND setting_key = ?", adminID, key).
		First(&setting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			http.Error(w, "Setting not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Error retrieving setting", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(setting)
}

// UpsertSetting writes one row per (admin, key), replacing the value when the
// row already exists.
func (h *SettingsHandler) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	adminID, err := utils.GetUserIDFromContext(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	key := mux.Vars(r)["key"]

	var request struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	setting := models.AdminSetting{
		AdminUserID:  adminID,
		SettingKey:   key,
		SettingValue: request.Value,
	}

	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "admin_user_id"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		http.Error(w, "Error saving setting", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(setting)
}
