package models

// Role identifies what a user can do on a site. Approval ceilings for
// material requests depend on the approver's role, not on the record.
type Role string

const (
	RoleLabour         Role = "labour"
	RoleJuniorEngineer Role = "junior_engineer"
	RoleSupervisor     Role = "supervisor"
	RoleProjectManager Role = "project_manager"
	RoleOwner          Role = "owner"
)

// CanApproveAttendance reports whether the role may decide attendance records.
func (r Role) CanApproveAttendance() bool {
	return r == RoleSupervisor || r == RoleProjectManager || r == RoleOwner
}

// CanApproveAboveCeiling reports whether the role may approve material
// requests whose computed total exceeds the configured ceiling.
func (r Role) CanApproveAboveCeiling() bool {
	return r == RoleProjectManager || r == RoleOwner
}

// IsApprover reports whether the role may decide material requests at all.
func (r Role) IsApprover() bool {
	return r == RoleSupervisor || r == RoleProjectManager || r == RoleOwner
}
