package handler

import (
	"net/http"

	"facturation/internal/middleware"
	"facturation/internal/model"
	"facturation/internal/service"
	"facturation/pkg/pagination"
	"facturation/pkg/response"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService service.CardService
}

func NewCardHandler(cardService service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

func (h *CardHandler) RegisterRoutes(router *gin.RouterGroup) {
	cards := router.Group("/api/cards")
	{
		cards.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleAgent), h.ListCards)
		cards.GET("/client/:code", middleware.RequireRole(model.RoleAdmin, model.RoleAgent), h.GetCardForClient)
	}
}

// ListCards returns a paginated list of issued discount cards
// @Summary      List discount cards
// @Description  Retrieves a paginated list of issued discount cards
// @Tags         cards
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /api/cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	params := pagination.Parse(c)

	cards, total, err := h.cardService.ListCards(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, "cards", cards, total, params.Page, params.Limit))
}

// GetCardForClient returns the discount card held by a client
// @Summary      Get client card
// @Description  Fetch the discount card held by a client, if any
// @Tags         cards
// @Security     BearerAuth
// @Produce      json
// @Param        code  path      string  true  "Client code"
// @Success      200   {object}  response.Response{data=service.CardResponse}
// @Failure      404   {object}  response.Response
// @Router       /api/cards/client/{code} [get]
func (h *CardHandler) GetCardForClient(c *gin.Context) {
	card, err := h.cardService.GetCardForClient(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, card))
}
