package models

// Permission is one capability a course owner can grant to an auxiliary
// teacher. The set is fixed; "comunicate" keeps the backend's spelling.
type Permission string

const (
	PermissionCreateTask Permission = "create task"
	PermissionCreateExam Permission = "create exam"
	PermissionComunicate Permission = "comunicate"
)

// AllPermissions lists every grantable permission.
var AllPermissions = []Permission{
	PermissionCreateTask,
	PermissionCreateExam,
	PermissionComunicate,
}

// PermissionEntry wraps a single permission, matching the backend's wire
// shape for auxiliary assignments.
type PermissionEntry struct {
	Permission Permission `json:"permission"`
}

// AuxiliarTeacher is a secondary instructor granted a subset of permissions
// on a course by its primary teacher.
type AuxiliarTeacher struct {
	Auxiliar    string            `json:"auxiliar"` // email
	Permissions []PermissionEntry `json:"permissions"`
}

// Key implements liststore.Keyed.
func (a AuxiliarTeacher) Key() string { return a.Auxiliar }

// Can reports whether the assignment includes the given permission.
func (a AuxiliarTeacher) Can(p Permission) bool {
	for _, entry := range a.Permissions {
		if entry.Permission == p {
			return true
		}
	}
	return false
}
