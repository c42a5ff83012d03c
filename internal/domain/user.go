package domain

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleVolunteer UserRole = "volunteer"
)

func ValidUserRole(r UserRole) bool {
	return r == UserRoleAdmin || r == UserRoleVolunteer
}

type User struct {
	ID           int32         `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Role         UserRole      `json:"role"`
	GoogleID     string        `json:"-"` // Set for accounts created via Google sign-in
	Certificates []Certificate `json:"certificates,omitempty"`
	CreatedOn    string        `json:"created_on"`
	UpdatedOn    string        `json:"updated_on"`
}

// Certificate is a credential a volunteer attaches to their profile.
type Certificate struct {
	ID                int32   `json:"id"`
	UserID            int32   `json:"user_id"`
	Name              string  `json:"name"`
	Provider          string  `json:"provider,omitempty"`
	DateIssued        *string `json:"date_issued,omitempty"`
	DateExpired       *string `json:"date_expired,omitempty"`
	CertificateNumber string  `json:"certificate_number,omitempty"`
	Category          string  `json:"category,omitempty"`
	PhotoURL          string  `json:"photo_url,omitempty"`
}
