package domain

type UserRole string

const (
	RoleUser         UserRole = "USER"
	RoleCollaborator UserRole = "COLLABORATOR"
	RoleAdmin        UserRole = "ADMIN"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleUser, RoleCollaborator, RoleAdmin:
		return true
	}
	return false
}

// swagger:model domain.User
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Role      UserRole `json:"role"`
}

type RegisterData struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
}
