package models

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// LoginResponse carries the logged in user and the issued access token.
// The token is sent as "Authorization: Bearer <accessToken>" on protected
// routes.
type LoginResponse struct {
	Success     bool   `json:"success"`
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

// MessageResponse is a generic success/failure envelope with a human
// readable message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

// ErrorResponse wraps a data-layer error surfaced to the client.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Err     string `json:"err"`
}
