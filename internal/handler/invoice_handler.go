package handler

import (
	"net/http"

	"facturation/internal/middleware"
	"facturation/internal/model"
	"facturation/internal/pdf"
	"facturation/internal/service"
	"facturation/pkg/pagination"
	"facturation/pkg/response"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	billingService service.BillingService
	clientService  service.ClientService
}

func NewInvoiceHandler(billingService service.BillingService, clientService service.ClientService) *InvoiceHandler {
	return &InvoiceHandler{
		billingService: billingService,
		clientService:  clientService,
	}
}

func (h *InvoiceHandler) RegisterRoutes(router *gin.RouterGroup) {
	invoices := router.Group("/api/invoices")
	{
		invoices.POST("", middleware.RequireRole(model.RoleAdmin, model.RoleAgent), h.PostInvoice)
		invoices.GET("", middleware.RequireRole(model.RoleAdmin, model.RoleAgent), h.ListInvoices)
		invoices.GET("/:number", middleware.RequireRole(model.RoleAdmin, model.RoleAgent), h.GetInvoice)
		invoices.GET("/:number/pdf", middleware.RequireRole(model.RoleAdmin, model.RoleAgent), h.GetInvoicePDF)
	}
}

// PostInvoice posts a new invoice for a client
// @Summary      Post invoice
// @Description  Computes totals, applies the client's card discount, assigns the next invoice number and may issue a discount card
// @Tags         invoices
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.PostInvoiceRequest  true  "Post Invoice Payload"
// @Success      201      {object}  response.Response{data=service.InvoiceResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/invoices [post]
func (h *InvoiceHandler) PostInvoice(c *gin.Context) {
	var req service.PostInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	invoice, err := h.billingService.PostInvoice(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, invoice))
}

// ListInvoices returns a paginated list of invoices
// @Summary      List invoices
// @Description  Retrieves a paginated list of invoices, optionally filtered by client code
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        client  query     string  false  "Filter by client code"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Failure      500     {object}  response.Response
// @Router       /api/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	params := pagination.Parse(c)

	invoices, total, err := h.billingService.ListInvoices(c.Request.Context(), params.Page, params.Limit, c.Query("client"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, "invoices", invoices, total, params.Page, params.Limit))
}

// GetInvoice returns a single invoice by number
// @Summary      Get invoice
// @Description  Fetch a posted invoice with its lines and totals
// @Tags         invoices
// @Security     BearerAuth
// @Produce      json
// @Param        number  path      string  true  "Invoice number"
// @Success      200     {object}  response.Response{data=service.InvoiceResponse}
// @Failure      404     {object}  response.Response
// @Router       /api/invoices/{number} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.billingService.GetInvoice(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, invoice))
}

// GetInvoicePDF returns the printable PDF for an invoice
// @Summary      Download invoice PDF
// @Description  Renders the invoice as a printable A4 PDF document
// @Tags         invoices
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        number  path      string  true  "Invoice number"
// @Success      200     {file}    file
// @Failure      404     {object}  response.Response
// @Router       /api/invoices/{number}/pdf [get]
func (h *InvoiceHandler) GetInvoicePDF(c *gin.Context) {
	invoice, err := h.billingService.GetInvoice(c.Request.Context(), c.Param("number"))
	if err != nil {
		writeError(c, err)
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), invoice.ClientCode)
	if err != nil {
		writeError(c, err)
		return
	}

	document, err := pdf.RenderInvoice(invoice, client)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+invoice.Number+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", document)
}
