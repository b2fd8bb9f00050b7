package role

import "strings"

type Role string

const (
	User      Role = "USER"
	Admin     Role = "ADMIN"
	Therapist Role = "THERAPIST"
	Doctor    Role = "DOCTOR"
)

// Staff lists the roles that count as employees.
var Staff = []Role{Admin, Therapist, Doctor}

func Parse(raw string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	switch r {
	case User, Admin, Therapist, Doctor:
		return r, true
	}
	return "", false
}

func (r Role) IsStaff() bool {
	for _, s := range Staff {
		if s == r {
			return true
		}
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
