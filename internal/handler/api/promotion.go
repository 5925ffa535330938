package api

import (
	"net/http"

	"vista-ecoupon/internal/handler/httperr"
	"vista-ecoupon/internal/handler/middleware"
	"vista-ecoupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionQueries queries.PromotionQueries
}

func NewPromotionHandler(promotionQueries queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{promotionQueries: promotionQueries}
}

// @Summary Current promotions
// @Description Eligible campaigns and coupons for the caller, with lock state
// @Tags promotions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CampaignView
// @Failure 401 {object} map[string]string
// @Router /promotions/current [get]
func (h *PromotionHandler) Current(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	views, err := h.promotionQueries.Current(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load promotions", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}
