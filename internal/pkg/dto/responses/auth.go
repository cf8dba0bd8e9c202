package responses

type Login struct {
	AccessToken string      `json:"accessToken"`
	User        SessionUser `json:"user"`
}

type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Role     string `json:"role"`
}
