package packets

// RequestCodeRequest starts a passwordless login: a code is mailed to Email.
type RequestCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyCodeRequest redeems a mailed code for a session token.
type VerifyCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type UpdateCurrentProfileRequest struct {
	Name *string `json:"name"`
}
