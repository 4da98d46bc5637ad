package handlers

import (
	"net/http"

	services "github.com/projectpulse/dashboard-services/api/services"
)

func GetUsers(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ListUsersService(svc, w, r)
	}
}

func CreateUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateUserService(svc, w, r)
	}
}

func UpdateUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateUserService(svc, w, r)
	}
}

func DeleteUser(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteUserService(svc, w, r)
	}
}
