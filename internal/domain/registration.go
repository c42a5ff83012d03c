package domain

type RegistrationStatus string

const (
	RegistrationStatusPending  RegistrationStatus = "pending"
	RegistrationStatusApproved RegistrationStatus = "approved"
	RegistrationStatusRejected RegistrationStatus = "rejected"
)

// ValidRegistrationStatus reports whether s is one of the three
// statuses a registration may hold.
func ValidRegistrationStatus(s RegistrationStatus) bool {
	switch s {
	case RegistrationStatusPending, RegistrationStatusApproved, RegistrationStatusRejected:
		return true
	}
	return false
}

// Registration links one user to one event. At most one registration
// exists per (user, event) pair.
type Registration struct {
	ID        int32              `json:"id"`
	UserID    int32              `json:"user_id"`
	EventID   int32              `json:"event_id"`
	Status    RegistrationStatus `json:"status"`
	User      *User              `json:"user,omitempty"`  // Populated on admin listings
	Event     *Event             `json:"event,omitempty"` // Populated on "my registrations"
	CreatedOn string             `json:"created_on"`
	UpdatedOn string             `json:"updated_on"`
}

// Tally is the per-status registration count for one event.
type Tally struct {
	Pending  int32 `json:"pending"`
	Approved int32 `json:"approved"`
	Rejected int32 `json:"rejected"`
}
