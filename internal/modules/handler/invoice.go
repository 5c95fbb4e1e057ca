package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/halcyonlabs/studio-api/internal/modules/model"
	"github.com/halcyonlabs/studio-api/internal/modules/serializer"
	"github.com/halcyonlabs/studio-api/internal/modules/service"
	"github.com/halcyonlabs/studio-api/internal/pkg/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceHandler struct {
	svc service.InvoiceService
}

func NewInvoiceHandler(s service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{svc: s}
}

type CreateInvoiceReq struct {
	InvoiceNumber string          `json:"invoice_number"`
	ClientID      string          `json:"client_id" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date" binding:"required"`
	Status        string          `json:"status"`
}

// ListInvoices godoc
//
//	@Summary		List invoices
//	@Description	List invoices joined with client display fields, ordered by due date descending
//	@Tags			invoice
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=[]model.Invoice}
//	@Router			/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	invoices, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: invoices})
}

// CreateInvoice godoc
//
//	@Summary		Create invoice
//	@Description	Create a new invoice; the number is generated when absent
//	@Tags			invoice
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateInvoiceReq	true	"CreateInvoice payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Invoice}
//	@Router			/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	req := CreateInvoiceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	if req.Amount.IsNegative() {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("amount is negative", nil))
		return
	}
	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid client_id", err))
		return
	}
	dueDate, err := types.ParseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid due_date", err))
		return
	}

	invoice := model.Invoice{
		UserID:        userID,
		InvoiceNumber: req.InvoiceNumber,
		ClientID:      clientID,
		Amount:        req.Amount,
		DueDate:       dueDate,
		Status:        req.Status,
	}
	if err := h.svc.Create(c.Request.Context(), &invoice); err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: invoice})
}

type UpdateInvoiceReq struct {
	InvoiceNumber *string          `json:"invoice_number"`
	ClientID      *string          `json:"client_id" binding:"omitempty,uuid"`
	Amount        *decimal.Decimal `json:"amount"`
	DueDate       *string          `json:"due_date"`
	Status        *string          `json:"status"`
}

// UpdateInvoice godoc
//
//	@Summary		Update invoice
//	@Description	Partially update an invoice; fields absent from the payload are untouched
//	@Tags			invoice
//	@Accept			json
//	@Produce		json
//	@Param			invoice_id	path	string					true	"Invoice ID"	Format(uuid)
//	@Param			payload		body	handler.UpdateInvoiceReq	true	"UpdateInvoice payload"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Invoice}
//	@Router			/invoices/{invoice_id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("invoice_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := UpdateInvoiceReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	fields := map[string]interface{}{}
	if req.InvoiceNumber != nil {
		fields["invoice_number"] = *req.InvoiceNumber
	}
	if req.ClientID != nil {
		clientID, err := uuid.Parse(*req.ClientID)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid client_id", err))
			return
		}
		fields["client_id"] = clientID
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("amount is negative", nil))
			return
		}
		fields["amount"] = *req.Amount
	}
	if req.DueDate != nil {
		dueDate, err := types.ParseDate(*req.DueDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid due_date", err))
			return
		}
		fields["due_date"] = dueDate
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("no fields to update", nil))
		return
	}

	invoice, err := h.svc.Update(c.Request.Context(), userID, invoiceID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, serializer.NotFoundErr("invoice not found", err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: invoice})
}

// InvoiceSummary godoc
//
//	@Summary		Invoice summary
//	@Description	Aggregate totals by status; cached and invalidated on every invoice mutation
//	@Tags			invoice
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=service.InvoiceSummary}
//	@Router			/invoices/summary [get]
func (h *InvoiceHandler) InvoiceSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, serializer.AuthErr(""))
		return
	}

	summary, err := h.svc.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: summary})
}
