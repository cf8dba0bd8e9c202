package care_dto

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Role     string `json:"role"`
}

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// AuthResult carries the refresh token lifted from the refreshToken cookie
// next to the JSON body of a login or refresh response.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *User
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Errors  []string `json:"errors"`
}
