package handlers

import (
	"net/http"

	services "github.com/projectpulse/dashboard-services/api/services"
)

func GetMembers(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetMembersService(svc, w, r)
	}
}

func CreateMember(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateMemberService(svc, w, r)
	}
}

func UpdateMember(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateMemberService(svc, w, r)
	}
}

func DeleteMember(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteMemberService(svc, w, r)
	}
}
