package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/hbnb/internal/credentials"
	"github.com/BruksfildServices01/hbnb/internal/dto"
	"github.com/BruksfildServices01/hbnb/internal/facade"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/httpresp"
	"github.com/BruksfildServices01/hbnb/internal/middleware"
	"github.com/BruksfildServices01/hbnb/internal/models"
	useruc "github.com/BruksfildServices01/hbnb/internal/usecase/user"
)

type AuthHandler struct {
	facade  *facade.Facade
	tokens  *credentials.TokenIssuer
	revoker credentials.Revoker
}

func NewAuthHandler(
	f *facade.Facade,
	tokens *credentials.TokenIssuer,
	revoker credentials.Revoker,
) *AuthHandler {
	return &AuthHandler{facade: f, tokens: tokens, revoker: revoker}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"max=50"`
	LastName  string `json:"last_name" binding:"max=50"`
	Email     string `json:"email" binding:"max=120"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  dto.UserDTO `json:"user"`
	Token string      `json:"access_token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.facade.RegisterUser(c.Request.Context(), useruc.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithToken(c, user, true)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.facade.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithToken(c, user, false)
}

// Logout revokes the presented token for the rest of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		httperr.Unauthorized(c, "missing_token", "authentication failed")
		return
	}

	if h.revoker != nil && claims.JTI != "" {
		ttl := time.Until(claims.ExpiresAt)
		if err := h.revoker.Revoke(c.Request.Context(), claims.JTI, ttl); err != nil {
			log.Error().Err(err).Str("subject", claims.Caller.SubjectID).Msg("logout failed")
			httperr.Internal(c, "logout_failed", "could not revoke token")
			return
		}
	}

	httpresp.NoContent(c)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, user *models.User, created bool) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("token issuance failed")
		httperr.Internal(c, "failed_to_generate_token", "could not issue token")
		return
	}

	resp := AuthResponse{User: dto.NewUser(user), Token: token}
	if created {
		httpresp.Created(c, resp)
		return
	}
	httpresp.OK(c, resp)
}
