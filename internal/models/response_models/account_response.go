package response_models

type AccountLoginResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"session_id"`
	State     string `json:"state"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
