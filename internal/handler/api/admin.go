package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "vista-ecoupon/internal/handler/dto/request"
	resdto "vista-ecoupon/internal/handler/dto/response"
	"vista-ecoupon/internal/handler/httperr"
	"vista-ecoupon/internal/usecase/commands"
	"vista-ecoupon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultUsageLogLimit = 500

type AdminHandler struct {
	auth             commands.AuthCommands
	campaigns        commands.CampaignCommands
	promotionQueries queries.PromotionQueries
	historyQueries   queries.HistoryQueries
}

func NewAdminHandler(
	auth commands.AuthCommands,
	campaigns commands.CampaignCommands,
	promotionQueries queries.PromotionQueries,
	historyQueries queries.HistoryQueries,
) *AdminHandler {
	return &AdminHandler{
		auth:             auth,
		campaigns:        campaigns,
		promotionQueries: promotionQueries,
		historyQueries:   historyQueries,
	}
}

// @Summary Admin login
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{Token: token})
}

// @Summary List campaigns
// @Description All campaigns, inactive ones included
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} promotion.Campaign
// @Router /admin/campaigns [get]
func (h *AdminHandler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.promotionQueries.ListCampaigns(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load campaigns", nil)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

// @Summary Get campaign
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 200 {object} promotion.Campaign
// @Failure 404 {object} map[string]string
// @Router /admin/campaigns/{id} [get]
func (h *AdminHandler) GetCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign id", nil)
		return
	}

	campaign, err := h.promotionQueries.GetCampaign(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Campaign not found", nil)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// @Summary Create campaign
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CampaignRequest true "Campaign"
// @Success 201 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/campaigns [post]
func (h *AdminHandler) CreateCampaign(c *gin.Context) {
	var req reqdto.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.campaigns.Create(c.Request.Context(), req.ToDomain(uuid.Nil))
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCampaign) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Campaign failed validation", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary Update campaign
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Param request body reqdto.CampaignRequest true "Campaign"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/campaigns/{id} [put]
func (h *AdminHandler) UpdateCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign id", nil)
		return
	}

	var req reqdto.CampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.campaigns.Update(c.Request.Context(), req.ToDomain(id)); err != nil {
		switch {
		case errors.Is(err, commands.ErrCampaignNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Campaign not found", nil)
		case errors.Is(err, commands.ErrInvalidCampaign):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Campaign failed validation", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id.String()})
}

// @Summary Delete campaign
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/campaigns/{id} [delete]
func (h *AdminHandler) DeleteCampaign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid campaign id", nil)
		return
	}

	if err := h.campaigns.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCampaignNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Campaign not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Usage logs
// @Description Back-office ledger export, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max rows"
// @Success 200 {array} queries.UsageView
// @Router /admin/usage-logs [get]
func (h *AdminHandler) ListUsageLogs(c *gin.Context) {
	limit := defaultUsageLogLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	views, err := h.historyQueries.ListUsageLogs(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load usage logs", nil)
		return
	}

	c.JSON(http.StatusOK, views)
}
