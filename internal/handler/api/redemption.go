package api

import (
	"errors"
	"net/http"

	reqdto "vista-ecoupon/internal/handler/dto/request"
	resdto "vista-ecoupon/internal/handler/dto/response"
	"vista-ecoupon/internal/handler/httperr"
	"vista-ecoupon/internal/handler/middleware"
	"vista-ecoupon/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RedemptionHandler struct {
	redemptions commands.RedemptionCommands
}

func NewRedemptionHandler(redemptions commands.RedemptionCommands) *RedemptionHandler {
	return &RedemptionHandler{redemptions: redemptions}
}

// @Summary Generate redemption code
// @Description Issue a single-use code for an eligible, unlocked coupon
// @Tags redemptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateCodeRequest true "Coupon to redeem"
// @Success 201 {object} resdto.CodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /redemptions [post]
func (h *RedemptionHandler) Generate(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	var req reqdto.GenerateCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.redemptions.Generate(c.Request.Context(), sess, req.CouponID, req.GetBranchName())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCouponAlreadyUsed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Coupon already used this period", nil)
		case errors.Is(err, commands.ErrCouponLocked):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Coupon is not yet unlocked", nil)
		case errors.Is(err, commands.ErrCouponNotEligible):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not available for this session", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCodeView(view))
}

// @Summary Confirm redemption
// @Description Settle an active code as used
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param value path string true "Code value"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /redemptions/{value}/confirm [post]
func (h *RedemptionHandler) Confirm(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	if err := h.redemptions.Confirm(c.Request.Context(), sess, c.Param("value")); err != nil {
		switch {
		case errors.Is(err, commands.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Redemption code not found", nil)
		case errors.Is(err, commands.ErrCodeNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Redemption code belongs to another session", nil)
		case errors.Is(err, commands.ErrCodeExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Redemption code expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Used"})
}

// @Summary Discard redemption code
// @Description Cancel an active code without recording usage
// @Tags redemptions
// @Produce json
// @Security BearerAuth
// @Param value path string true "Code value"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /redemptions/{value} [delete]
func (h *RedemptionHandler) Discard(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	if err := h.redemptions.Discard(c.Request.Context(), sess, c.Param("value")); err != nil {
		switch {
		case errors.Is(err, commands.ErrCodeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Redemption code not found", nil)
		case errors.Is(err, commands.ErrCodeNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Redemption code belongs to another session", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
