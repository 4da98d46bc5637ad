package handlers

import (
	"net/http"

	services "github.com/projectpulse/dashboard-services/api/services"
)

func GetMemberStats(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.MemberStatsService(svc, w, r)
	}
}

func GetDepartmentStats(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DepartmentStatsService(svc, w, r)
	}
}

func GetDivisionStats(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DivisionStatsService(svc, w, r)
	}
}

func GetOverviewStats(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.OverviewStatsService(svc, w, r)
	}
}
