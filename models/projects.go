package models

// ProjectStatus is the lifecycle stage of a project. Values are
// case-sensitive and compared exactly; the mixed casing is inherited data.
type ProjectStatus string

const (
	StatusOngoing       ProjectStatus = "Ongoing"
	StatusOnHold        ProjectStatus = "On Hold"
	StatusDone          ProjectStatus = "DONE"
	StatusCancelled     ProjectStatus = "Cancelled"
	StatusInDevelopment ProjectStatus = "In Development"
	StatusUAT           ProjectStatus = "UAT"
	StatusLive          ProjectStatus = "LIVE"
	StatusRedevelopment ProjectStatus = "Re Development"
)

// Project priorities.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Project types. A sub project carries a weak reference to its main project.
const (
	ProjectTypeMain = "main"
	ProjectTypeSub  = "sub"
)

// Project is a tracked piece of work. TeamMembers holds user ids and may
// reference users that no longer exist; EndDate is not validated against
// StartDate. Both are deliberate gaps carried over from the source data.
type Project struct {
	ID            string        `json:"id" bson:"_id"`
	Name          string        `json:"name" bson:"name"`
	Type          string        `json:"type" bson:"type"`
	MainProjectID string        `json:"mainProjectId,omitempty" bson:"mainProjectId,omitempty"`
	Priority      string        `json:"priority" bson:"priority"`
	Status        ProjectStatus `json:"status" bson:"status"`
	StartDate     string        `json:"startDate" bson:"startDate"`
	EndDate       string        `json:"endDate" bson:"endDate"`
	CommonPages   int           `json:"commonPages" bson:"commonPages"`
	UniquePages   int           `json:"uniquePages" bson:"uniquePages"`
	Tasks         []string      `json:"tasks" bson:"tasks"`
	TeamMembers   []string      `json:"teamMembers" bson:"teamMembers"`
}

// HasMember reports whether the project's roster contains the given user id.
// A nil roster never matches.
func (p Project) HasMember(userID string) bool {
	for _, id := range p.TeamMembers {
		if id == userID {
			return true
		}
	}
	return false
}
