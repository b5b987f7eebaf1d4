package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

func TestListTransactionsRequest_ValidateKeepsParsedWindow(t *testing.T) {
	req := NewListTransactionsRequest()
	req.Location = "A"
	req.StartDate = "2024-01-01"
	req.EndDate = "2024-01-31T12:30:00"

	require.NoError(t, req.Validate())

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 12, 30, 0, 0, time.UTC)
	assert.Equal(t, domain.TransactionFilter{
		Location:  "A",
		StartDate: &start,
		EndDate:   &end,
		Limit:     DefaultLimit,
	}, req.ToFilter())
}

func TestListTransactionsRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		limit   int
		wantErr string
	}{
		{name: "open window", limit: DefaultLimit},
		{name: "bad start", start: "yesterday", limit: DefaultLimit, wantErr: "start_date"},
		{name: "bad end", end: "01/02/2024", limit: DefaultLimit, wantErr: "end_date"},
		{name: "reversed", start: "2024-02-01", end: "2024-01-01", limit: DefaultLimit, wantErr: "start_date must not be after end_date"},
		{name: "limit too large", limit: MaxLimit + 1, wantErr: "Limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewListTransactionsRequest()
			req.StartDate = tt.start
			req.EndDate = tt.end
			req.Limit = tt.limit

			err := req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestReportRequest_Validate(t *testing.T) {
	req := ReportRequest{StartDate: "2024-01-01T00:00:00Z", EndDate: "2024-01-02", Location: "Costco - Home"}
	require.NoError(t, req.Validate())

	start, end, location := req.Period()
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), end)
	require.NotNil(t, location)
	assert.Equal(t, "Costco - Home", *location)

	_, _, location = (&ReportRequest{}).Period()
	assert.Nil(t, location)

	assert.Error(t, (&ReportRequest{StartDate: "2024-01-01"}).Validate())
	assert.ErrorContains(t, (&ReportRequest{StartDate: "2024-01-01", EndDate: "soon"}).Validate(), "end_date")
	assert.ErrorIs(t, (&ReportRequest{StartDate: "2024-03-01", EndDate: "2024-01-01"}).Validate(), errStartAfterEnd)
}
