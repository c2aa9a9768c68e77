package domain

import "strconv"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor identifies who requested a mutation; recorded in the history trail.
type Actor struct {
	ID   uint64
	Role Role
}

func (a Actor) String() string {
	return string(a.Role) + ":" + strconv.FormatUint(a.ID, 10)
}

func (a Actor) Admin() bool {
	return a.Role == RoleAdmin
}

// CanAccessOrder checks ownership; admins see every order.
func (a Actor) CanAccessOrder(o *Order) bool {
	return a.Admin() || o.UserID == a.ID
}
