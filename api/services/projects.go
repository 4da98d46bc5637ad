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

// GetProjectsService returns every tracked project.
func GetProjectsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	projects, err := svc.DB.ListProjects(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve projects")
		WriteStorageError(w, "Failed to fetch projects", err)
		return
	}

	if projects == nil {
		projects = []models.Project{}
	}
	WriteResponse(w, http.StatusOK, projects)
}

// CreateProjectService stores a new project, stamping a generated id.
func CreateProjectService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())

	var payload models.Project
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logger.Warn().Err(err).Msg("Invalid project payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request payload"})
		return
	}

	created, err := svc.DB.CreateProject(r.Context(), payload)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create project")
		WriteStorageError(w, "Failed to create project", err)
		return
	}

	logger.Info().Str("project_id", created.ID).Str("name", created.Name).Msg("Project created successfully")
	WriteResponse(w, http.StatusCreated, created)
}

// UpdateProjectService merges the submitted fields into the stored project.
// Untouched fields keep their current values.
func UpdateProjectService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	projectID := mux.Vars(r)["project-id"]

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		logger.Warn().Err(err).Msg("Invalid project update payload")
		WriteResponse(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request payload"})
		return
	}

	updated, err := svc.DB.UpdateProject(r.Context(), projectID, fields)
	if errors.Is(err, db.ErrNotFound) {
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to update project")
		WriteStorageError(w, "Failed to update project", err)
		return
	}

	WriteResponse(w, http.StatusOK, updated)
}

// DeleteProjectService removes a project.
func DeleteProjectService(svc *Service, w http.ResponseWriter, r *http.Request) {

	logger := zerolog.Ctx(r.Context())
	projectID := mux.Vars(r)["project-id"]

	err := svc.DB.DeleteProject(r.Context(), projectID)
	if errors.Is(err, db.ErrNotFound) {
		WriteResponse(w, http.StatusNotFound, models.ErrorResponse{Error: "Project not found"})
		return
	}
	if err != nil {
		logger.Error().Err(err).Str("project_id", projectID).Msg("Failed to delete project")
		WriteStorageError(w, "Failed to delete project", err)
		return
	}

	logger.Info().Str("project_id", projectID).Msg("Project deleted successfully")
	WriteResponse(w, http.StatusNoContent, nil)
}
