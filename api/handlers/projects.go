package handlers

import (
	"net/http"

	services "github.com/projectpulse/dashboard-services/api/services"
)

func GetProjects(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetProjectsService(svc, w, r)
	}
}

func CreateProject(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateProjectService(svc, w, r)
	}
}

func UpdateProject(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateProjectService(svc, w, r)
	}
}

func DeleteProject(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteProjectService(svc, w, r)
	}
}
