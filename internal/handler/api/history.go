package api

import (
	"net/http"

	"vista-ecoupon/internal/handler/httperr"
	"vista-ecoupon/internal/handler/middleware"
	"vista-ecoupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyQueries queries.HistoryQueries
}

func NewHistoryHandler(historyQueries queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{historyQueries: historyQueries}
}

// @Summary Redemption history
// @Description The caller's ledger entries for the current month, newest first
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UsageView
// @Failure 401 {object} map[string]string
// @Router /history [get]
func (h *HistoryHandler) Monthly(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error", nil)
		return
	}

	views, err := h.historyQueries.Monthly(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load history", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}
