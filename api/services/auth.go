package services

import (
	"encoding/json"
	"net/http"

	"github.com/projectpulse/dashboard-services/models"
	"github.com/rs/zerolog"
)

// LoginService checks the submitted credentials against the users
// collection. The comparison is a case-sensitive plaintext equality check,
// matching how the inherited data set stores passwords.
func LoginService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var creds models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.Warn().Err(err).Msg("Invalid login payload")
		WriteResponse(w, http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request payload",
		})
		return
	}

	users, err := svc.DB.ListUsers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read users during login")
		WriteStorageError(w, "Login failed", err)
		return
	}

	for _, u := range users {
		if u.Username == creds.Username && u.Password == creds.Password {
			logger.Info().Str("user_id", u.ID).Msg("Login succeeded")
			public := u.Public()
			WriteResponse(w, http.StatusOK, models.Response{
				Success: true,
				User:    &public,
			})
			return
		}
	}

	logger.Warn().Str("username", creds.Username).Msg("Login failed: bad credentials")
	WriteResponse(w, http.StatusUnauthorized, models.Response{
		Success: false,
		Message: "Invalid username or password",
	})
}

// ListUsersService returns every user with the password stripped.
func ListUsersService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	users, err := svc.DB.ListUsers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve users")
		WriteStorageError(w, "Failed to fetch users", err)
		return
	}

	sanitized := make([]models.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}

	logger.Info().Int("user_count", len(sanitized)).Msg("Successfully retrieved users")
	WriteResponse(w, http.StatusOK, sanitized)
}
