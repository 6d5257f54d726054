package model

// ActorKind distinguishes the two account tables an actor can come from.
type ActorKind string

const (
	ActorAdministrator ActorKind = "administrator"
	ActorStudent       ActorKind = "student"
)

// Actor is the authenticated identity attached to a request after bearer
// token resolution. Exactly one of Administrator/Student is set, matching Kind.
type Actor struct {
	Kind          ActorKind
	Role          Role
	Administrator *Administrator
	Student       *Student
}

// ID returns the surrogate key of the underlying account.
func (a *Actor) ID() int64 {
	switch a.Kind {
	case ActorAdministrator:
		if a.Administrator != nil {
			return a.Administrator.ID
		}
	case ActorStudent:
		if a.Student != nil {
			return a.Student.ID
		}
	}
	return 0
}

// Slug returns the external identifier of the underlying account.
func (a *Actor) Slug() string {
	switch a.Kind {
	case ActorAdministrator:
		if a.Administrator != nil {
			return a.Administrator.Slug
		}
	case ActorStudent:
		if a.Student != nil {
			return a.Student.Slug
		}
	}
	return ""
}
