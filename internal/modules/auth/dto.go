package auth

type RegisterInput struct {
	Phone string `json:"phone" binding:"required,min=9"`
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

type PhoneInput struct {
	Phone string `json:"phone" binding:"required,min=9"`
}

type CheckInput struct {
	Phone string `json:"phone" binding:"required,min=9"`
	Code  string `json:"code" binding:"required"`
}

type AdminLoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
