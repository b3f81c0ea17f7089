package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	commands commands.AuthCommands
	queries  queries.UserQueries
	jwt      *jwt.Service
	cookies  config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, jwtService *jwt.Service, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands: cmds,
		queries:  q,
		jwt:      jwtService,
		cookies:  cfg.Cookie,
	}
}

// @Summary Register
// @Description Create a customer or provider account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.commands.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	h.startSession(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.startSession(c, http.StatusOK, result)
}

func (h *AuthHandler) startSession(c *gin.Context, status int, result *commands.AuthResult) {
	user, err := h.loadUser(c, result.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cookies,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwt.AccessTokenDuration(), h.jwt.RefreshTokenDuration())

	c.JSON(status, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        user,
	})
}

// @Summary Refresh tokens
// @Description Rotate the token pair using the refresh cookie or body token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	// an empty body is allowed; the cookie carries the token
	_ = c.ShouldBindJSON(&req)

	token := req.RefreshToken
	if token == "" {
		token = cookie.GetRefreshToken(c)
	}
	if token == "" {
		httperr.Abort(c, errors.New("refresh token missing"), httperr.New(http.StatusUnauthorized, "Refresh token required"))
		return
	}

	pair, err := h.commands.RefreshToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	cookie.SetTokenCookies(c, h.cookies, pair.AccessToken, pair.RefreshToken,
		h.jwt.AccessTokenDuration(), h.jwt.RefreshTokenDuration())
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; clearing the cookies ends the browser session.
	cookie.ClearTokenCookies(c, h.cookies)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	s, ok := session(c)
	if !ok {
		return
	}

	user, err := h.loadUser(c, s.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) loadUser(c *gin.Context, id uuid.UUID) (*resdto.UserResponse, error) {
	view, err := h.queries.Me(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return resdto.From[resdto.UserResponse](view)
}
