package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// googleOAuthHandler handles Google sign-in.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
}

func newGoogleOAuthHandler(gs portssvc.GoogleOAuthSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{googleOAuthService: gs}
}

// googleLoginURLResponse carries the consent URL and the state the frontend must echo back.
type googleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, googleOAuthService portssvc.GoogleOAuthSvcFacade) {
	h := newGoogleOAuthHandler(googleOAuthService)
	google := rg.Group("/auth/google")
	{
		google.GET("/login-url", h.loginURL)
		google.POST("/exchange-code", h.exchangeCode)
	}
}

// loginURL godoc
// @Summary Get the Google consent URL
// @Description Returns the URL to send the user to, with a fresh CSRF state.
// @Tags oauth
// @Produce json
// @Success 200 {object} dto.Response{data=googleLoginURLResponse}
// @Router /api/v1/auth/google/login-url [get]
func (h *googleOAuthHandler) loginURL(c *gin.Context) {
	ctx := c.Request.Context()
	state, err := h.googleOAuthService.GenerateStateString(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(googleLoginURLResponse{
		URL:   h.googleOAuthService.GetGoogleLoginURL(ctx, state),
		State: state,
	}))
}

// exchangeCode godoc
// @Summary Exchange a Google authorization code
// @Description Exchanges the code, validates the Google ID token and signs in the matching account,
// @Description creating it on first use.
// @Tags oauth
// @Accept json
// @Produce json
// @Param request body dto.GoogleExchangeRequest true "Authorization code"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response "Invalid authorization code"
// @Failure 401 {object} dto.Response "Invalid Google token or disabled account"
// @Router /api/v1/auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	var req dto.GoogleExchangeRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.googleOAuthService.SignInWithCode(c.Request.Context(), middleware.CallerFromContext(c), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromContext(c).Info("User signed in with Google", slog.String("user_id", result.User.UserID))
	c.JSON(http.StatusOK, dto.OKWithMessage("Login successful", dto.ToAuthResponse(result)))
}
