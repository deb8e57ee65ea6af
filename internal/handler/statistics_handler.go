package handler

import (
	"net/http"

	"facturation/internal/middleware"
	"facturation/internal/model"
	"facturation/internal/service"
	"facturation/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/api/statistics")
	{
		stats.GET("/sales", middleware.RequireRole(model.RoleAdmin), h.GetSalesStatistics)
	}
}

// GetSalesStatistics returns ledger-wide sales figures
// @Summary      Get sales statistics
// @Description  Returns invoice count, total, average and highest revenue plus revenue per client
// @Tags         statistics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=service.SalesStatisticsResponse}
// @Failure      500  {object}  response.Response
// @Router       /api/statistics/sales [get]
func (h *StatisticsHandler) GetSalesStatistics(c *gin.Context) {
	stats, err := h.statisticsService.GetSalesStatistics(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
