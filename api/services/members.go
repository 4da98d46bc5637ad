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

// GetMembersService returns the full member roster.
func GetMembersService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	members, err := svc.DB.ListMembers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve members")
		WriteStorageError(w, "Failed to fetch members", err)
		return
	}

	if members == nil {
		members = []models.Member{}
	}
	WriteResponse(w, http.StatusOK, members)
}

// CreateMemberService stores a member record as-is, stamping a generated id.
// Member records are free-form; no field validation is applied.
func CreateMemberService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.Member
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid member payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request payload"})
		return
	}

	created, err := svc.DB.CreateMember(r.Context(), payload)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create member")
		WriteStorageError(w, "Failed to create member", err)
		return
	}

	logger.Info().Str("member_id", created.ID()).Msg("Member created successfully")
	WriteResponse(w, http.StatusCreated, created)
}

// UpdateMemberService merges the submitted fields into the stored member.
func UpdateMemberService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	memberID := mux.Vars(r)["member-id"]

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		logger.Warn().Err(err).Msg("Invalid member update payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request payload"})
		return
	}

	updated, err := svc.DB.UpdateMember(r.Context(), memberID, fields)
	if errors.Is(err, db.ErrNotFound) {
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{Error: "Member not found"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("member_id", memberID).Msg("Failed to update member")
		WriteStorageError(w, "Failed to update member", err)
		return
	}

	WriteResponse(w, http.StatusOK, updated)
}

// DeleteMemberService removes a member from the roster.
func DeleteMemberService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	memberID := mux.Vars(r)["member-id"]

	err := svc.DB.DeleteMember(r.Context(), memberID)
	if errors.Is(err, db.ErrNotFound) {
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{Error: "Member not found"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("member_id", memberID).Msg("Failed to delete member")
		WriteStorageError(w, "Failed to delete member", err)
		return
	}

	logger.Info().Str("member_id", memberID).Msg("Member deleted successfully")
	WriteResponse(w, http.StatusNoContent, nil)
}
