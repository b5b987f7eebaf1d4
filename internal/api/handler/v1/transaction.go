package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/inventory-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/inventory-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/inventory-api/internal/domain"
)

type TransactionService interface {
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	GenerateReport(ctx context.Context, start, end time.Time, location *string) (domain.Report, error)
}

type TransactionHandler struct {
	svc TransactionService
}

func NewTransactionHandler(svc TransactionService) *TransactionHandler {
	return &TransactionHandler{
		svc: svc,
	}
}

// HandleListTransactions godoc
// @Summary      List transactions
// @Tags         transactions
// @Produce      json
// @Param        location    query     string  false  "Exact location"
// @Param        start_date  query     string  false  "Inclusive lower bound"
// @Param        end_date    query     string  false  "Inclusive upper bound"
// @Param        skip        query     int     false  "Offset"          default(0)
// @Param        limit       query     int     false  "Maximum results" default(100)
// @Success      200         {array}   domain.Transaction
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /transactions/ [get]
func (h *TransactionHandler) HandleListTransactions(ctx *gin.Context) {
	input := request.NewListTransactionsRequest()
	if err := ctx.ShouldBindQuery(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	transactions, err := h.svc.ListTransactions(ctx.Request.Context(), input.ToFilter())
	if err != nil {
		err = fmt.Errorf("HandleListTransactions -> h.svc.ListTransactions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	ctx.JSON(http.StatusOK, transactions)
}

// HandleGetReport godoc
// @Summary      Sales and restock report
// @Description  Totals are in major currency units with two fraction digits.
// @Tags         transactions
// @Produce      json
// @Param        start_date  query     string  true   "Inclusive lower bound"
// @Param        end_date    query     string  true   "Inclusive upper bound"
// @Param        location    query     string  false  "Exact location"
// @Success      200         {object}  response.ReportResponse
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /transactions/report [get]
func (h *TransactionHandler) HandleGetReport(ctx *gin.Context) {
	var input request.ReportRequest
	if err := ctx.ShouldBindQuery(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	start, end, location := input.Period()
	report, err := h.svc.GenerateReport(ctx.Request.Context(), start, end, location)
	if err != nil {
		err = fmt.Errorf("HandleGetReport -> h.svc.GenerateReport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.NewReportResponse(report))
}
