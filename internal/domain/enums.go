package domain

// DoubtStatus is the lifecycle state of a doubt. pending -> resolved is the
// only transition.
type DoubtStatus string

const (
	DoubtStatusPending  DoubtStatus = "pending"
	DoubtStatusResolved DoubtStatus = "resolved"
)

func (s DoubtStatus) String() string { return string(s) }

func (s DoubtStatus) IsValid() bool {
	switch s {
	case DoubtStatusPending, DoubtStatusResolved:
		return true
	}
	return false
}

// UserRole represents the authorization level carried in the access token.
type UserRole string

const (
	UserRoleLearner UserRole = "learner"
	UserRoleMentor  UserRole = "mentor"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleLearner, UserRoleMentor, UserRoleAdmin:
		return true
	}
	return false
}

// CanResolveDoubts reports whether the role may answer doubts and manage
// learners' entitlements.
func (r UserRole) CanResolveDoubts() bool {
	return r == UserRoleMentor || r == UserRoleAdmin
}
