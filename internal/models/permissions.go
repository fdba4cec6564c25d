package models

// Role groups a set of granted permission ids.
type Role struct {
	ID          string
	Name        string
	Description string
	Permissions []string
	UserCount   int
}

// HasPermission reports whether the role grants the given permission id.
func (r Role) HasPermission(id string) bool {
	for _, p := range r.Permissions {
		if p == id {
			return true
		}
	}
	return false
}

// Permission is one entry of the permissions reference list.
type Permission struct {
	ID          string
	Module      string
	Action      string
	Description string
}
