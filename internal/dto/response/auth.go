package response

type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
