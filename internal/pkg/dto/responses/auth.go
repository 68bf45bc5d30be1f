package responses

type Login struct {
	Token     string `json:"token"`
	UserType  string `json:"user_type"`
	UserEmail string `json:"user_email"`
	Landing   string `json:"landing"`
}
