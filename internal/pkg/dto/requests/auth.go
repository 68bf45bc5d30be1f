package requests

type Login struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	LoginAsPatient bool   `json:"login_as_patient"`
}
