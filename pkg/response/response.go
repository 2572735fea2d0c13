package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SuccessResponse struct {
	Data interface{} `json:"data"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	UID       uint   `json:"user_id"`
	AccountID uint   `json:"account_id"`
	Email     string `json:"email"`
}
