package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "vista-ecoupon/internal/handler/dto/response"
	"vista-ecoupon/internal/handler/httperr"
	"vista-ecoupon/internal/pkg/geo"
	"vista-ecoupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BranchHandler struct {
	branchQueries queries.BranchQueries
}

func NewBranchHandler(branchQueries queries.BranchQueries) *BranchHandler {
	return &BranchHandler{branchQueries: branchQueries}
}

// @Summary List branches
// @Description All store locations, for manual branch selection
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BranchResponse
// @Router /branches [get]
func (h *BranchHandler) List(c *gin.Context) {
	list, err := h.branchQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load branches", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBranches(list))
}

// @Summary Nearest branch
// @Description Resolve the closest branch to the given coordinates
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Success 200 {object} resdto.BranchResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /branches/nearest [get]
func (h *BranchHandler) Nearest(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(latErr, lngErr), "lat and lng query parameters are required", nil)
		return
	}

	nearest, err := h.branchQueries.Nearest(c.Request.Context(), geo.Point{Lat: lat, Lng: lng})
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "No branch could be resolved", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBranch(*nearest))
}
