package handlers

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// Signer defines the interface that the service must implement.
type Signer interface {
	Signup(ctx context.Context, username, password string) error
}

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password, at least 8 characters with one of !@#$%^&*(),.?":{}|<>
	// required: true
	// default: Secret1!
	Password string `json:"password"`
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Sign up
// @Description Creates a new account. Usernames are unique and case sensitive.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "Signup request"
// @Success 201 {object} handlers.MessageResponse "Signup successful! Please login."
// @Failure 400 {object} handlers.ErrorResponse "Weak password / invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /signup [post]
func NewSignupHandler(svc Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, errInvalidBody)
			return
		}

		if err := svc.Signup(r.Context(), req.Username, req.Password); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{Message: "Signup successful! Please login."})
	}
}
