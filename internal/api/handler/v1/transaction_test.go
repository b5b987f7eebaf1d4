package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

func newTransactionRouter(svc TransactionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewTransactionHandler(svc)
	r.GET("/transactions/", h.HandleListTransactions)
	r.GET("/transactions/report", h.HandleGetReport)

	return r
}

func TestHandleListTransactions(t *testing.T) {
	svc := new(mockTransactionService)
	r := newTransactionRouter(svc)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 12, 30, 0, 0, time.UTC)
	svc.On("ListTransactions", mock.Anything, domain.TransactionFilter{
		Location:  "A",
		StartDate: &start,
		EndDate:   &end,
		Skip:      0,
		Limit:     100,
	}).Return([]domain.Transaction{{ID: 1, Type: domain.TransactionSale, QuantityChange: -3}}, nil)

	rec := serve(r, http.MethodGet, "/transactions/?location=A&start_date=2024-01-01&end_date=2024-01-31T12:30:00", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "SALE", got[0]["transaction_type"])
}

func TestHandleListTransactions_Invalid(t *testing.T) {
	r := newTransactionRouter(new(mockTransactionService))

	for _, target := range []string{
		"/transactions/?start_date=yesterday",
		"/transactions/?start_date=2024-02-01&end_date=2024-01-01",
		"/transactions/?limit=5000",
	} {
		rec := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandleGetReport(t *testing.T) {
	svc := new(mockTransactionService)
	r := newTransactionRouter(svc)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	report := domain.NewReport(start, end, nil, []domain.TransactionTotals{
		{Type: domain.TransactionSale, Count: 1, Value: -3000},
		{Type: domain.TransactionRestock, Count: 1, Value: 5000},
	})
	svc.On("GenerateReport", mock.Anything, start, end, (*string)(nil)).Return(report, nil)

	rec := serve(r, http.MethodGet, "/transactions/report?start_date=2024-01-01T00:00:00Z&end_date=2024-01-02", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"period_start": "2024-01-01T00:00:00Z",
		"period_end": "2024-01-02T00:00:00Z",
		"location": null,
		"total_sales_value": 30.00,
		"total_restock_value": 50.00,
		"transaction_count": 2
	}`, rec.Body.String())
}

func TestHandleGetReport_WithLocation(t *testing.T) {
	svc := new(mockTransactionService)
	r := newTransactionRouter(svc)

	svc.On("GenerateReport", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(location *string) bool {
		return location != nil && *location == "Costco - Home"
	})).Return(domain.Report{}, nil)

	rec := serve(r, http.MethodGet, "/transactions/report?start_date=2024-01-01&end_date=2024-01-02&location=Costco+-+Home", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandleGetReport_Invalid(t *testing.T) {
	r := newTransactionRouter(new(mockTransactionService))

	for _, target := range []string{
		"/transactions/report",
		"/transactions/report?start_date=2024-01-01",
		"/transactions/report?start_date=2024-03-01&end_date=2024-01-01",
		"/transactions/report?start_date=01/01/2024&end_date=2024-01-02",
	} {
		rec := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
