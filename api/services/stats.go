package services

import (
	"net/http"

	"github.com/projectpulse/dashboard-services/internal/stats"
	"github.com/projectpulse/dashboard-services/models"
	"github.com/rs/zerolog"
)

// memberStatsResponse is the team performance table plus its summary cards.
type memberStatsResponse struct {
	Members        []stats.MemberStats `json:"members"`
	Totals         stats.MemberStats   `json:"totals"`
	CompletionRate int                 `json:"completionRate"`
	TopPerformer   topEntry            `json:"topPerformer"`
}

type topEntry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type departmentStatsResponse struct {
	Departments     []stats.DepartmentStats `json:"departments"`
	ProductionReady topEntry                `json:"productionReady"`
	MostActive      topEntry                `json:"mostActive"`
	QualityFocus    topEntry                `json:"qualityFocus"`
}

type divisionStatsResponse struct {
	Divisions       []stats.DivisionStats `json:"divisions"`
	TopPerformer    topEntry              `json:"topPerformer"`
	LargestDivision topEntry              `json:"largestDivision"`
	MostProductive  topEntry              `json:"mostProductive"`
}

// loadStatsInputs fetches both collections the aggregation engine consumes.
// A nil users or projects slice is fine, the engine treats it as empty.
func loadStatsInputs(svc *Service, w http.ResponseWriter, r *http.Request) ([]models.User, []models.Project, bool) {

	logger := zerolog.Ctx(r.Context())

	users, err := svc.DB.ListUsers(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve users for stats")
		WriteStorageError(w, "Failed to compute statistics", err)
		return nil, nil, false
	}
	projects, err := svc.DB.ListProjects(r.Context())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve projects for stats")
		WriteStorageError(w, "Failed to compute statistics", err)
		return nil, nil, false
	}
	return users, projects, true
}

// MemberStatsService serves the per-member performance table. The sort and
// order query parameters select the column and direction; anything
// unrecognized falls back to name ascending.
func MemberStatsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	users, projects, ok := loadStatsInputs(svc, w, r)
	if !ok {
		return
	}

	rows := stats.PerMember(users, projects)

	field := r.URL.Query().Get("sort")
	if field == "" {
		field = "name"
	}
	order := stats.Ascending
	if r.URL.Query().Get("order") == string(stats.Descending) {
		order = stats.Descending
	}
	rows = stats.SortMembers(rows, field, order)
	if rows == nil {
		rows = []stats.MemberStats{}
	}

	totals := stats.Totals(rows)
	topName, topValue := stats.TopBy(rows, func(m stats.MemberStats) string { return m.Name },
		func(m stats.MemberStats) float64 { return stats.CompletionRate(m.Done, m.ProjectCount) })

	WriteResponse(w, http.StatusOK, memberStatsResponse{
		Members:        rows,
		Totals:         totals,
		CompletionRate: stats.Percent(totals.Done, totals.ProjectCount),
		TopPerformer:   topEntry{Name: topName, Value: topValue},
	})
}

// DepartmentStatsService serves the department rollup table with its three
// highlight cards.
func DepartmentStatsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	users, projects, ok := loadStatsInputs(svc, w, r)
	if !ok {
		return
	}

	rows := stats.Departments(users, projects)
	if rows == nil {
		rows = []stats.DepartmentStats{}
	}

	label := func(d stats.DepartmentStats) string { return d.Department }
	prodName, prodValue := stats.TopBy(rows, label,
		func(d stats.DepartmentStats) float64 { return float64(d.Live) })
	activeName, activeValue := stats.TopBy(rows, label,
		func(d stats.DepartmentStats) float64 { return float64(d.Ongoing) })
	qualityName, qualityValue := stats.TopBy(rows, label,
		func(d stats.DepartmentStats) float64 { return float64(d.UAT) })

	WriteResponse(w, http.StatusOK, departmentStatsResponse{
		Departments:     rows,
		ProductionReady: topEntry{Name: prodName, Value: prodValue},
		MostActive:      topEntry{Name: activeName, Value: activeValue},
		QualityFocus:    topEntry{Name: qualityName, Value: qualityValue},
	})
}

// DivisionStatsService serves the division rollup table with its highlight
// cards.
func DivisionStatsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	users, projects, ok := loadStatsInputs(svc, w, r)
	if !ok {
		return
	}

	rows := stats.Divisions(users, projects)
	if rows == nil {
		rows = []stats.DivisionStats{}
	}

	label := func(d stats.DivisionStats) string { return d.Division }
	topName, topValue := stats.TopBy(rows, label,
		func(d stats.DivisionStats) float64 { return float64(d.SuccessRate) })
	largestName, largestValue := stats.TopBy(rows, label,
		func(d stats.DivisionStats) float64 { return float64(d.Teams) })
	productiveName, productiveValue := stats.TopBy(rows, label,
		func(d stats.DivisionStats) float64 { return float64(d.Projects) })

	WriteResponse(w, http.StatusOK, divisionStatsResponse{
		Divisions:       rows,
		TopPerformer:    topEntry{Name: topName, Value: topValue},
		LargestDivision: topEntry{Name: largestName, Value: largestValue},
		MostProductive:  topEntry{Name: productiveName, Value: productiveValue},
	})
}

// OverviewStatsService serves the organization-wide executive summary.
func OverviewStatsService(svc *Service, w http.ResponseWriter, r *http.Request) {

	users, projects, ok := loadStatsInputs(svc, w, r)
	if !ok {
		return
	}

	WriteResponse(w, http.StatusOK, stats.Organization(users, projects))
}
