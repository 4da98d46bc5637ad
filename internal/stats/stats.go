// Package stats derives the per-member, per-department and per-division
// rollups behind every role dashboard. All functions are total: dangling
// team-member references, missing fields and empty collections produce zero
// values, never errors.
package stats

import (
	"math"

	"github.com/projectpulse/dashboard-services/models"
)

// MemberStats is one row of the team-member performance table. The five
// status buckets deliberately exclude Cancelled, In Development and
// Re Development, so the bucket sum can be less than ProjectCount.
type MemberStats struct {
	Name         string `json:"name"`
	ProjectCount int    `json:"projectCount"`
	Ongoing      int    `json:"ongoing"`
	OnHold       int    `json:"onHold"`
	Done         int    `json:"done"`
	UAT          int    `json:"uat"`
	Live         int    `json:"live"`
}

// PerMember computes a stats row for every user holding the Team Member
// role. Projects with no roster simply never match.
func PerMember(users []models.User, projects []models.Project) []MemberStats {
	var rows []MemberStats
	for _, u := range users {
		if u.Role != models.RoleTeamMember {
			continue
		}
		row := MemberStats{Name: u.Name}
		for _, p := range projects {
			if !p.HasMember(u.ID) {
				continue
			}
			row.ProjectCount++
			switch p.Status {
			case models.StatusOngoing:
				row.Ongoing++
			case models.StatusOnHold:
				row.OnHold++
			case models.StatusDone:
				row.Done++
			case models.StatusUAT:
				row.UAT++
			case models.StatusLive:
				row.Live++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Totals sums every field across the rows for the organization-level cards.
func Totals(rows []MemberStats) MemberStats {
	var total MemberStats
	for _, r := range rows {
		total.ProjectCount += r.ProjectCount
		total.Ongoing += r.Ongoing
		total.OnHold += r.OnHold
		total.Done += r.Done
		total.UAT += r.UAT
		total.Live += r.Live
	}
	return total
}

// CompletionRate is done/total. A zero total yields 0, not NaN, so the value
// is always safe to compare and format.
func CompletionRate(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

// Percent renders a ratio as a whole-number percentage.
func Percent(done, total int) int {
	return int(math.Round(CompletionRate(done, total) * 100))
}

// Health is the qualitative score shown on department and division rows.
type Health string

const (
	HealthExcellent  Health = "Excellent"
	HealthGood       Health = "Good"
	HealthFair       Health = "Fair"
	HealthNeedsFocus Health = "Needs Focus"
)

// HealthScore classifies a group by the share of its active projects that
// are live. Rules are evaluated in order and the first match wins; a group
// with no active projects lands in the worst tier rather than dividing by
// zero.
func HealthScore(ongoing, uat, live int) Health {
	total := ongoing + uat + live
	if total == 0 {
		return HealthNeedsFocus
	}
	liveRatio := float64(live) / float64(total)
	switch {
	case liveRatio > 0.5:
		return HealthExcellent
	case liveRatio > 0.3:
		return HealthGood
	case float64(uat)/float64(total) > 0.4:
		return HealthFair
	default:
		return HealthNeedsFocus
	}
}

// TopBy returns the label and value of the row with the highest value. The
// scan is seeded with an empty label and zero, so ties keep the earliest row
// and an empty input returns ("", 0).
func TopBy[T any](rows []T, label func(T) string, value func(T) float64) (string, float64) {
	bestLabel, bestValue := "", 0.0
	for _, r := range rows {
		if v := value(r); v > bestValue {
			bestLabel, bestValue = label(r), v
		}
	}
	return bestLabel, bestValue
}
