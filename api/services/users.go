package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/projectpulse/dashboard-services/db"
	"github.com/projectpulse/dashboard-services/models"
	"github.com/rs/zerolog"
)

// CreateUserService creates a login account. Department is mandatory and
// usernames must be unique. The uniqueness check is read-then-write: two
// truly concurrent creations with the same username can both pass it. That
// race is accepted for this low-contention internal tool; sequential
// requests always see the duplicate.
func CreateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid create user payload")
		WriteResponse(w, http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request payload",
		})
		return
	}

	if payload.Department == "" {
		WriteResponse(w, http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Department is required",
		})
		return
	}

	users, err := svc.DB.ListUsers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read users")
		WriteStorageError(w, "Failed to create user", err)
		return
	}

	for _, u := range users {
		if u.Username == payload.Username {
			WriteResponse(w, http.StatusBadRequest, models.Response{
				Success: false,
				Message: "Username already exists",
			})
			return
		}
	}

	created, err := svc.DB.CreateUser(r.Context(), models.User{
		Username:   payload.Username,
		Password:   payload.Password,
		Role:       payload.Role,
		Name:       payload.Name,
		Department: payload.Department,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create user")
		WriteStorageError(w, "Failed to create user", err)
		return
	}

	logger.Info().Str("user_id", created.ID).Msg("User created successfully")
	public := created.Public()
	WriteResponse(w, http.StatusCreated, models.Response{
		Success: true,
		User:    &public,
	})
}

// UpdateUserService applies a partial update to a user. Empty payload fields
// keep their stored values. Users holding the Super Admin role cannot be
// edited, regardless of where the request came from.
func UpdateUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	userID := mux.Vars(r)["user-id"]

	var payload models.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid update user payload")
		WriteResponse(w, http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request payload",
		})
		return
	}

	if payload.Department == "" {
		WriteResponse(w, http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Department is required",
		})
		return
	}

	existing, err := svc.DB.GetUser(r.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		WriteResponse(w, http.StatusNotFound, models.Response{
			Success: false,
			Message: "User not found",
		})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Failed to read user")
		WriteStorageError(w, "Failed to update user", err)
		return
	}

	if existing.Role == models.RoleSuperAdmin {
		logger.Warn().Str("user_id", userID).Msg("Rejected edit of Super Admin user")
		WriteResponse(w, http.StatusForbidden, models.Response{
			Success: false,
			Message: "Cannot edit Super Admin user",
		})
		return
	}

	users, err := svc.DB.ListUsers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read users")
		WriteStorageError(w, "Failed to update user", err)
		return
	}
	for _, u := range users {
		if u.Username == payload.Username && u.ID != userID {
			WriteResponse(w, http.StatusBadRequest, models.Response{
				Success: false,
				Message: "Username already exists",
			})
			return
		}
	}

	fields := map[string]interface{}{}
	if payload.Username != "" {
		fields["username"] = payload.Username
	}
	if payload.Password != "" {
		fields["password"] = payload.Password
	}
	if payload.Role != "" {
		fields["role"] = string(payload.Role)
	}
	if payload.Name != "" {
		fields["name"] = payload.Name
	}
	fields["department"] = payload.Department

	updated, err := svc.DB.UpdateUser(r.Context(), userID, fields)
	if errors.Is(err, db.ErrNotFound) {
		WriteResponse(w, http.StatusNotFound, models.Response{
			Success: false,
			Message: "User not found",
		})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Failed to update user")
		WriteStorageError(w, "Failed to update user", err)
		return
	}

	logger.Info().Str("user_id", updated.ID).Msg("User updated successfully")
	public := updated.Public()
	WriteResponse(w, http.StatusOK, models.Response{
		Success: true,
		User:    &public,
	})
}

// DeleteUserService removes a user. Deleting any user holding the Super
// Admin role is forbidden; the check runs server-side so it holds even when
// the client UI is bypassed.
func DeleteUserService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	userID := mux.Vars(r)["user-id"]

	existing, err := svc.DB.GetUser(r.Context(), userID)
	if errors.Is(err, db.ErrNotFound) {
		WriteResponse(w, http.StatusNotFound, models.Response{
			Success: false,
			Message: "User not found",
		})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("user_id", userID).Msg("Failed to read user")
		WriteStorageError(w, "Failed to delete user", err)
		return
	}

	if existing.Role == models.RoleSuperAdmin {
		logger.Warn().Str("user_id", userID).Msg("Rejected delete of Super Admin user")
		WriteResponse(w, http.StatusForbidden, models.Response{
			Success: false,
			Message: "Cannot delete Super Admin user",
		})
		return
	}

	if err := svc.DB.DeleteUser(r.Context(), userID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			WriteResponse(w, http.StatusNotFound, models.Response{
				Success: false,
				Message: "User not found",
			})
			return
		}
		logger.Error().Err(err).Str("user_id", userID).Msg("Failed to delete user")
		WriteStorageError(w, "Failed to delete user", err)
		return
	}

	logger.Info().Str("user_id", userID).Msg("User deleted successfully")
	WriteResponse(w, http.StatusOK, models.Response{
		Success: true,
		Message: "User deleted successfully",
	})
}
