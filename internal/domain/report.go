package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const minorUnitExponent = -2

// TransactionTotals is the per-type aggregate of ledger entries in a reporting window.
type TransactionTotals struct {
	Type  TransactionType
	Count int64
	Value int64 // sum of quantity_change * price_at_time, minor units
}

type Report struct {
	PeriodStart       time.Time
	PeriodEnd         time.Time
	Location          *string
	TotalSalesValue   decimal.Decimal
	TotalRestockValue decimal.Decimal
	TransactionCount  int64
}

// NewReport folds per-type totals into a report. Money stays in integer minor units until
// the final conversion so no floating point drift is introduced.
func NewReport(start, end time.Time, location *string, totals []TransactionTotals) Report {
	var sales, restocks, count int64
	for _, t := range totals {
		count += t.Count

		switch t.Type {
		case TransactionSale:
			sales += t.Value
		case TransactionRestock:
			restocks += t.Value
		}
	}

	if sales < 0 {
		sales = -sales
	}

	return Report{
		PeriodStart:       start,
		PeriodEnd:         end,
		Location:          location,
		TotalSalesValue:   MinorToMajor(sales),
		TotalRestockValue: MinorToMajor(restocks),
		TransactionCount:  count,
	}
}

func MinorToMajor(amount int64) decimal.Decimal {
	return decimal.New(amount, minorUnitExponent)
}
