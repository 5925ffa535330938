package api

import (
	"errors"
	"net/http"

	reqdto "vista-ecoupon/internal/handler/dto/request"
	resdto "vista-ecoupon/internal/handler/dto/response"
	"vista-ecoupon/internal/handler/httperr"
	"vista-ecoupon/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessions commands.SessionCommands
}

func NewSessionHandler(sessions commands.SessionCommands) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// @Summary Validate identity
// @Description Look up an identifier in the member store and start a session
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateSessionRequest true "Identifier to validate"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /session/validate [post]
func (h *SessionHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.sessions.Validate(c.Request.Context(), req.GetIdentifier())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrIdentifierRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Identifier is required", nil)
		case errors.Is(err, commands.ErrIdentitySourceUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Member validation is temporarily unavailable, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionResult(result))
}

// @Summary Start guest session
// @Description Issue an anonymous session token
// @Tags session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /session/guest [post]
func (h *SessionHandler) StartGuest(c *gin.Context) {
	result, err := h.sessions.StartGuest(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSessionResult(result))
}
