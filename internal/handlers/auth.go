package handlers

import (
	"errors"
	"net/http"

	"smart_thermostat/internal/repository"
	"smart_thermostat/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidCredentials = "invalid credentials"
	errSignUpFailed       = "failed to create account"
	errSignInFailed       = "failed to sign in"
)

// Credentials payload shared by sign-up and sign-in.
type authCredentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// signUpStatus maps account creation failures to HTTP responses.
func signUpStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidUsername), errors.Is(err, service.ErrWeakPassword):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, repository.ErrUsernameTaken):
		return http.StatusConflict, repository.ErrUsernameTaken.Error()
	default:
		return http.StatusInternalServerError, errSignUpFailed
	}
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      201   {object}  map[string]int
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var in authCredentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		code, msg := signUpStatus(err)
		if code == http.StatusInternalServerError {
			h.logAndJSONError(c, code, msg, "auth_sign_up_failed", err, "username", in.Username)
			return
		}
		h.log.Infow("auth_sign_up_rejected", "username", in.Username, "err", err)
		c.JSON(code, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      Obtain a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      authCredentials  true  "Credentials"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var in authCredentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), in.Username, in.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		h.log.Infow("auth_sign_in_rejected", "username", in.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
		return
	case err != nil:
		h.logAndJSONError(c, http.StatusInternalServerError, errSignInFailed, "auth_sign_in_failed", err, "username", in.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "token_type": "Bearer"})
}
