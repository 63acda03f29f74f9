package auth

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

// Role is carried in vendor bearer tokens.
type Role string

const (
	RoleViewer Role = "viewer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

var roleRank = map[Role]int{
	RoleViewer: 1,
	RoleVendor: 2,
	RoleAdmin:  3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	have, ok1 := roleRank[r]
	want, ok2 := roleRank[min]
	return ok1 && ok2 && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Vendor is the authenticated caller behind a request.
type Vendor struct {
	ID   uuid.UUID
	Role Role
}
