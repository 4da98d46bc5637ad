package handlers

import (
	"net/http"

	services "github.com/projectpulse/dashboard-services/api/services"
)

func Login(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.LoginService(svc, w, r)
	}
}
