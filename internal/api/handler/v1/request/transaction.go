package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

var errStartAfterEnd = errors.New("start_date must not be after end_date")

type ListTransactionsRequest struct {
	Location  string `form:"location"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Pagination

	// set by Validate
	start *time.Time
	end   *time.Time
}

func NewListTransactionsRequest() ListTransactionsRequest {
	return ListTransactionsRequest{Pagination: NewPagination()}
}

func (req *ListTransactionsRequest) Validate() error {
	if err := validation.ValidateStruct(&req.Pagination, req.Pagination.rules()...); err != nil {
		return err
	}

	var err error
	if req.start, err = parseOptionalTimestamp(req.StartDate); err != nil {
		return validation.Errors{"start_date": err}
	}
	if req.end, err = parseOptionalTimestamp(req.EndDate); err != nil {
		return validation.Errors{"end_date": err}
	}
	if req.start != nil && req.end != nil && req.start.After(*req.end) {
		return errStartAfterEnd
	}

	return nil
}

// ToFilter must only be called after Validate succeeded.
func (req *ListTransactionsRequest) ToFilter() domain.TransactionFilter {
	return domain.TransactionFilter{
		Location:  req.Location,
		StartDate: req.start,
		EndDate:   req.end,
		Skip:      req.Skip,
		Limit:     req.Limit,
	}
}

type ReportRequest struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Location  string `form:"location"`

	// set by Validate
	start time.Time
	end   time.Time
}

func (req *ReportRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.StartDate, validation.Required),
		validation.Field(&req.EndDate, validation.Required),
	)
	if err != nil {
		return err
	}

	if req.start, err = ParseTimestamp(req.StartDate); err != nil {
		return validation.Errors{"start_date": err}
	}
	if req.end, err = ParseTimestamp(req.EndDate); err != nil {
		return validation.Errors{"end_date": err}
	}
	if req.start.After(req.end) {
		return errStartAfterEnd
	}

	return nil
}

// Period returns the validated window and the location filter, nil when absent. It must
// only be called after Validate succeeded.
func (req *ReportRequest) Period() (time.Time, time.Time, *string) {
	var location *string
	if req.Location != "" {
		location = &req.Location
	}

	return req.start, req.end, location
}
