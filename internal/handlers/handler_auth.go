package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/factory_ops_app/internal/core/domain"
	portssvc "github.com/SscSPs/factory_ops_app/internal/core/ports/services"
	"github.com/SscSPs/factory_ops_app/internal/dto"
	"github.com/SscSPs/factory_ops_app/internal/middleware"
)

// authHandler handles sign-in, registration and session requests.
type authHandler struct {
	identityService portssvc.IdentitySvcFacade
	tokenService    portssvc.TokenSvcFacade
}

func newAuthHandler(is portssvc.IdentitySvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{identityService: is, tokenService: ts}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc, loginGuard []gin.HandlerFunc, is portssvc.IdentitySvcFacade, ts portssvc.TokenSvcFacade) {
	h := newAuthHandler(is, ts)

	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		chain := make([]gin.HandlerFunc, 0, len(loginGuard)+1)
		chain = append(chain, loginGuard...)
		return append(chain, handler)
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/owner/login", guarded(h.ownerLogin)...)
		auth.POST("/login", guarded(h.managerLogin)...)
		auth.POST("/register", h.register)
		auth.GET("/session", authRequired, h.currentSession)
		auth.POST("/logout", authRequired, h.logout)
	}
}

// ownerLogin godoc
// @Summary Owner login
// @Description Checks the provisioned owner credential and opens an owner session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Owner credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/owner/login [post]
func (h *authHandler) ownerLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	session, err := h.identityService.AuthenticateOwner(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}
	h.respondWithToken(c, session)
}

// managerLogin godoc
// @Summary Login
// @Description Authenticates against the credential store. A manager awaiting approval gets 403 PENDING_APPROVAL.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Awaiting approval"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) managerLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	session, err := h.identityService.AuthenticateManager(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to sign in")
		return
	}
	h.respondWithToken(c, session)
}

func (h *authHandler) respondWithToken(c *gin.Context, session *domain.Session) {
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), session)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate token", slog.String("error", err.Error()))
		// The session row exists but the client never learns its token.
		_ = h.identityService.Logout(c.Request.Context(), session.SessionID)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token", Code: "INTERNAL"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(session, token, expiresAt))
}

// register godoc
// @Summary Register as a manager
// @Description Creates a manager account that waits for the owner's approval.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterManagerRequest true "Registration details"
// @Success 201 {object} dto.IdentityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	identity, err := h.identityService.RegisterManager(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Manager registered", slog.String("identity_id", identity.IdentityID))
	c.JSON(http.StatusCreated, dto.ToIdentityResponse(identity))
}

// currentSession godoc
// @Summary Current session
// @Description Returns the identity behind the bearer token so a client can restore its state.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *authHandler) currentSession(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToIdentityResponse(&session.Identity))
}

// logout godoc
// @Summary Logout
// @Description Revokes the current session.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.identityService.Logout(c.Request.Context(), session.SessionID); err != nil {
		respondError(c, err, "Failed to sign out")
		return
	}
	c.Status(http.StatusNoContent)
}
