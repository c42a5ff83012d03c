package domain

// Caller is the identity resolved from a request credential. The zero
// value represents an anonymous caller.
type Caller struct {
	UserID int32
	Role   UserRole
}

func (c Caller) Anonymous() bool {
	return c.UserID == 0
}

func (c Caller) IsAdmin() bool {
	return c.Role == UserRoleAdmin
}
