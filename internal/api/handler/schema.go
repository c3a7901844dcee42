package handler

// messageResponse is the success envelope returned by mutation endpoints.
type messageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
