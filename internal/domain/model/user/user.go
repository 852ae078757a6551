package user

// User represents a registered user
type User struct {
	ID       int    `json:"id" yaml:"id"`
	UserName string `json:"user_name" yaml:"user_name"`
	Password string `json:"password" yaml:"password"`
}

// NewUser creates a user that has not been stored yet
func NewUser(userName, password string) *User {
	return &User{
		UserName: userName,
		Password: password,
	}
}

// EntityName is used in not-found messages
const EntityName = "User"
