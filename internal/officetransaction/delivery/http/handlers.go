package http

import (
	"reporting-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Create an office transaction
// @Tags OfficeTransaction
// @Accept json
// @Produce json
// @Param body body createReq true "Transaction"
// @Success 200 {object} transactionResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Security Bearer
// @Router /api/v1/office-transactions [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "officetransaction.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "officetransaction.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTransactionResp(o))
}

// @Summary List office transactions
// @Tags OfficeTransaction
// @Produce json
// @Param from_office_id query int false "Source office"
// @Param to_office_id query int false "Destination office"
// @Param currency_code query string false "ISO currency code"
// @Param date_from query string false "From date (YYYY-MM-DD)"
// @Param date_to query string false "To date (YYYY-MM-DD)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} listResp
// @Failure 400 {object} response.Resp
// @Security Bearer
// @Router /api/v1/office-transactions [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "officetransaction.delivery.http.List: processListRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "officetransaction.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListResp(o))
}

// @Summary Get an office transaction
// @Tags OfficeTransaction
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} transactionResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Security Bearer
// @Router /api/v1/office-transactions/{id} [get]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "officetransaction.delivery.http.Detail: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTransactionResp(o))
}

// @Summary Delete an office transaction
// @Tags OfficeTransaction
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Security Bearer
// @Router /api/v1/office-transactions/{id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processIDRequest(c)
	if err != nil {
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "officetransaction.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}
