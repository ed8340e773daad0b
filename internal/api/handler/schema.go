package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse acknowledges credential issue/clear operations.
type successResponse struct {
	Success bool `json:"success"`
}

// identitySchema validates the identity payload submitted at login. The
// payload itself stays an open claims map; only the subject email is
// structurally required.
type identitySchema struct {
	Email string `validate:"required,email"`
}
