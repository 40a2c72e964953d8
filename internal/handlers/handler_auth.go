package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration, sign-in and the caller's own account.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes registers the /auth routes. Register and login sit behind the limiter
// when one is given; the rest require a valid token.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade, requireAuth gin.HandlerFunc, limit gin.HandlerFunc) {
	h := newAuthHandler(authService)

	auth := rg.Group("/auth")
	public := auth.Group("")
	if limit != nil {
		public.Use(limit)
	}
	public.POST("/register", h.register)
	public.POST("/login", h.login)

	protected := auth.Group("", requireAuth)
	{
		protected.GET("/profile", h.getProfile)
		protected.PUT("/profile", h.updateProfile)
		protected.GET("/verify", h.verify)
		protected.POST("/logout", h.logout)
	}
}

// register godoc
// @Summary Register a new account
// @Description Creates a user account and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 409 {object} dto.Response "Username or email already registered"
// @Failure 429 {object} dto.Response "Too many requests"
// @Router /api/v1/auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Register(c.Request.Context(), middleware.CallerFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromContext(c).Info("User registered", slog.String("user_id", result.User.UserID))
	c.JSON(http.StatusCreated, dto.OKWithMessage("Registration successful", dto.ToAuthResponse(result)))
}

// login godoc
// @Summary Log in
// @Description Verifies username and password and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Invalid credentials or disabled account"
// @Failure 429 {object} dto.Response "Too many requests"
// @Router /api/v1/auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), middleware.CallerFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("Login successful", dto.ToAuthResponse(result)))
}

// getProfile godoc
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/v1/auth/profile [get]
func (h *authHandler) getProfile(c *gin.Context) {
	user, err := h.authService.Profile(c.Request.Context(), middleware.CallerFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToUserResponse(user)))
}

// updateProfile godoc
// @Summary Update own profile
// @Description Changes email, full name or password. Omitted fields are left untouched.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 409 {object} dto.Response "Email already registered"
// @Security BearerAuth
// @Router /api/v1/auth/profile [put]
func (h *authHandler) updateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), middleware.CallerFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKWithMessage("Profile updated", dto.ToUserResponse(user)))
}

// verify godoc
// @Summary Verify token
// @Description Returns the identity behind the bearer token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=dto.IdentityResponse}
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/v1/auth/verify [get]
func (h *authHandler) verify(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, dto.OKWithMessage("Token is valid", dto.ToIdentityResponse(identity)))
}

// logout godoc
// @Summary Log out
// @Description Records the logout. Tokens are stateless and simply discarded by the client.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.CallerFromContext(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OKWithMessage("Logout successful", nil))
}
