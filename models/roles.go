package models

// Role is the closed set of positions in the reporting hierarchy, ordered
// from Team Member at the bottom to Managing Director at the top, plus the
// Super Admin account used for user management.
type Role string

const (
	RoleTeamMember      Role = "Team Member"
	RoleTeamLeader      Role = "Team Leader"
	RoleGroupTeamLeader Role = "Group Team Leader"
	RoleGroupHead       Role = "Group Head"
	RoleLeaderOfGroup   Role = "Leader of Group Head"
	RoleManagingDir     Role = "Managing Director"
	RoleSuperAdmin      Role = "Super Admin"
)

// HierarchyLevels lists the management tiers in rank order. Super Admin is
// not part of the hierarchy and is excluded here.
var HierarchyLevels = []Role{
	RoleTeamMember,
	RoleTeamLeader,
	RoleGroupTeamLeader,
	RoleGroupHead,
	RoleLeaderOfGroup,
	RoleManagingDir,
}

// DashboardView identifies which dashboard variant a role is shown.
type DashboardView string

const (
	ViewTeamMember      DashboardView = "team-member"
	ViewTeamLeader      DashboardView = "team-leader"
	ViewGroupTeamLeader DashboardView = "group-team-leader"
	ViewGroupHead       DashboardView = "group-head"
	ViewLeader          DashboardView = "leader"
	ViewSuperAdmin      DashboardView = "super-admin"
)

// View maps a role to its dashboard variant. Leader of Group Head and
// Managing Director share the leadership view. Unrecognized roles fall back
// to the Team Member view rather than failing.
func (r Role) View() DashboardView {
	switch r {
	case RoleSuperAdmin:
		return ViewSuperAdmin
	case RoleTeamMember:
		return ViewTeamMember
	case RoleTeamLeader:
		return ViewTeamLeader
	case RoleGroupTeamLeader:
		return ViewGroupTeamLeader
	case RoleGroupHead:
		return ViewGroupHead
	case RoleLeaderOfGroup, RoleManagingDir:
		return ViewLeader
	default:
		return ViewTeamMember
	}
}

// Level returns the position of the role in the hierarchy, or -1 for roles
// outside it (Super Admin, unknown values).
func (r Role) Level() int {
	for i, role := range HierarchyLevels {
		if role == r {
			return i
		}
	}
	return -1
}
