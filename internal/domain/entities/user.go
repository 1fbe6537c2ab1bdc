package entities

// User represents a registered club member. The password column holds a
// bcrypt hash, never the plaintext credential.
type User struct {
	ID           int64  `json:"id" db:"id"`
	FirstName    string `json:"firstName" db:"firstName"`
	LastName     string `json:"lastName" db:"lastName"`
	Email        string `json:"email" db:"email"`
	Phone        string `json:"phone" db:"phone"`
	PasswordHash string `json:"-" db:"password"`
}

// Registration is the payload accepted by the register endpoint.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// Credentials is the payload accepted by the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
