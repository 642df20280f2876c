package domain

// Role controls which views a signed-in user may reach.
type Role string

const (
	// RoleAdmin may manage leader records through the admin dashboard.
	RoleAdmin Role = "admin"

	// RoleCitizen is the default role for registered users.
	RoleCitizen Role = "citizen"
)

// UserProfile is the signed-in user's identity. It is immutable for
// the duration of a session except through re-authentication.
type UserProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`

	Geography

	Role Role `json:"role"`
}

// IsAdmin reports whether the profile may reach admin views.
func (u UserProfile) IsAdmin() bool { return u.Role == RoleAdmin }

// Session pairs an authenticated profile with its bearer token.
type Session struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// Registration is the payload for creating a new account. The
// geography triple ties every citizen to one ward.
type Registration struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`

	Geography
}

// Validate checks the registration form fields. Whether the geography
// triple exists in the reference dataset is the region directory's
// concern, not this method's.
func (r Registration) Validate() error {
	v := NewValidationError("registration")

	if r.FirstName == "" {
		v.AddError("first name is required")
	}
	if r.LastName == "" {
		v.AddError("last name is required")
	}
	if r.Email == "" {
		v.AddError("email is required")
	}
	if r.Password == "" {
		v.AddError("password is required")
	}
	if r.County == "" || r.Constituency == "" || r.Ward == "" {
		v.AddError("county, constituency and ward are required")
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
