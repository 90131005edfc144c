package response

type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
