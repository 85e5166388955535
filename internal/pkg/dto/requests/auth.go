package requests

type SignUp struct {
	Firstname string `json:"firstname" validate:"required,min=1,max=100"`
	Lastname  string `json:"lastname" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	Role      string `json:"role" validate:"omitempty,role"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
