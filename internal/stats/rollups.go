package stats

import "github.com/projectpulse/dashboard-services/models"

// DepartmentStats is one row of the department performance table shown at
// the Group Head tier.
type DepartmentStats struct {
	Department      string `json:"department"`
	GroupTeamLeader string `json:"groupTeamLeader"`
	Teams           int    `json:"teams"`
	Projects        int    `json:"projects"`
	Ongoing         int    `json:"ongoing"`
	UAT             int    `json:"uat"`
	Live            int    `json:"live"`
	Health          Health `json:"health"`
}

// Departments groups Team Member users by department and rolls up the
// projects their members appear on. Departments surface in first-seen order
// so repeated runs over the same data agree.
func Departments(users []models.User, projects []models.Project) []DepartmentStats {
	var rows []DepartmentStats
	for _, dept := range distinct(users, models.RoleTeamMember, func(u models.User) string { return u.Department }) {
		memberIDs := map[string]bool{}
		leaders := map[string]bool{}
		for _, u := range users {
			if u.Role == models.RoleTeamMember && u.Department == dept {
				memberIDs[u.ID] = true
				leaders[u.TeamLeaderID] = true
			}
		}

		row := DepartmentStats{Department: dept, Teams: len(leaders)}
		for _, u := range users {
			if u.Role == models.RoleGroupTeamLeader && u.Department == dept {
				row.GroupTeamLeader = u.Name
				break
			}
		}

		for _, p := range projects {
			if !intersects(p.TeamMembers, memberIDs) {
				continue
			}
			row.Projects++
			switch p.Status {
			case models.StatusOngoing:
				row.Ongoing++
			case models.StatusUAT:
				row.UAT++
			case models.StatusLive:
				row.Live++
			}
		}
		row.Health = HealthScore(row.Ongoing, row.UAT, row.Live)
		rows = append(rows, row)
	}
	return rows
}

// DivisionStats is one row of the division performance table at the
// leadership tiers. Scale counts are derived from the Team Leader users
// attached to the division.
type DivisionStats struct {
	Division    string `json:"division"`
	GroupHead   string `json:"groupHead"`
	Departments int    `json:"departments"`
	Teams       int    `json:"teams"`
	Projects    int    `json:"projects"`
	Ongoing     int    `json:"ongoing"`
	UAT         int    `json:"uat"`
	Live        int    `json:"live"`
	Done        int    `json:"done"`
	SuccessRate int    `json:"successRate"`
	Performance Health `json:"performance"`
}

// Divisions derives the division set from Group Head users, with department
// standing in when a division is not recorded.
func Divisions(users []models.User, projects []models.Project) []DivisionStats {
	var rows []DivisionStats
	for _, division := range distinct(users, models.RoleGroupHead, divisionOf) {
		row := DivisionStats{Division: division}
		for _, u := range users {
			if u.Role == models.RoleGroupHead && divisionOf(u) == division {
				row.GroupHead = u.Name
				break
			}
		}

		leaderIDs := map[string]bool{}
		for _, u := range users {
			if u.Role == models.RoleTeamLeader && (u.Division == division || u.Department == division) {
				leaderIDs[u.ID] = true
			}
		}
		row.Departments = len(leaderIDs)
		row.Teams = len(leaderIDs)

		for _, p := range projects {
			if !intersects(p.TeamMembers, leaderIDs) {
				continue
			}
			row.Projects++
			switch p.Status {
			case models.StatusOngoing:
				row.Ongoing++
			case models.StatusUAT:
				row.UAT++
			case models.StatusLive:
				row.Live++
			case models.StatusDone:
				row.Done++
			}
		}
		row.SuccessRate = Percent(row.Done, row.Projects)
		row.Performance = HealthScore(row.Ongoing, row.UAT, row.Live)
		rows = append(rows, row)
	}
	return rows
}

// Overview is the executive summary bar: organization scale plus the overall
// delivery success rate.
type Overview struct {
	Divisions     int `json:"divisions"`
	Departments   int `json:"departments"`
	Teams         int `json:"teams"`
	TotalProjects int `json:"totalProjects"`
	SuccessRate   int `json:"successRate"`
}

// Organization computes the overview across the whole org. Divisions come
// from Group Heads, departments and teams from Team Leaders, and the success
// rate is completed projects over all projects.
func Organization(users []models.User, projects []models.Project) Overview {
	done := 0
	for _, p := range projects {
		if p.Status == models.StatusDone {
			done++
		}
	}
	return Overview{
		Divisions:     len(distinct(users, models.RoleGroupHead, divisionOf)),
		Departments:   len(distinct(users, models.RoleTeamLeader, func(u models.User) string { return u.Department })),
		Teams:         len(distinct(users, models.RoleTeamLeader, func(u models.User) string { return u.ID })),
		TotalProjects: len(projects),
		SuccessRate:   Percent(done, len(projects)),
	}
}

func divisionOf(u models.User) string {
	if u.Division != "" {
		return u.Division
	}
	return u.Department
}

// distinct collects the unique values of key over users holding role, in
// first-seen order.
func distinct(users []models.User, role models.Role, key func(models.User) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, u := range users {
		if u.Role != role {
			continue
		}
		k := key(u)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// intersects reports whether any of ids is present in the set.
func intersects(ids []string, set map[string]bool) bool {
	for _, id := range ids {
		if set[id] {
			return true
		}
	}
	return false
}
