package response

import (
	"encoding/json"
	"time"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

const moneyFractionDigits = 2

type ReportResponse struct {
	PeriodStart       time.Time   `json:"period_start"`
	PeriodEnd         time.Time   `json:"period_end"`
	Location          *string     `json:"location"`
	TotalSalesValue   json.Number `json:"total_sales_value" swaggertype:"number" example:"30.00"`
	TotalRestockValue json.Number `json:"total_restock_value" swaggertype:"number" example:"50.00"`
	TransactionCount  int64       `json:"transaction_count"`
}

func NewReportResponse(report domain.Report) ReportResponse {
	return ReportResponse{
		PeriodStart:       report.PeriodStart,
		PeriodEnd:         report.PeriodEnd,
		Location:          report.Location,
		TotalSalesValue:   json.Number(report.TotalSalesValue.StringFixed(moneyFractionDigits)),
		TotalRestockValue: json.Number(report.TotalRestockValue.StringFixed(moneyFractionDigits)),
		TransactionCount:  report.TransactionCount,
	}
}
