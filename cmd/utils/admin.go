package utils

import (
	"net/http"

	"github.com/interviewbook/interviewbook-server/cmd/models"
	"gorm.io/gorm"
)

// RequireAdmin wraps AuthMiddleware and additionally checks that the
// authenticated user carries the admin role.
func RequireAdmin(db *gorm.DB, next http.HandlerFunc) http.HandlerFunc {
	return AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserIDFromContext(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if user.Role != models.RoleAdmin {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}

		next(w, r)
	})
}
