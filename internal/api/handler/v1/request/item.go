package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/inventory-api/internal/domain"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	Price       *int64  `json:"price"` // minor units
	Location    string  `json:"location" binding:"required"`
}

func (req *CreateItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Description, validation.NotNil, validation.Length(0, 1000)),
		validation.Field(&req.Quantity, validation.NotNil, validation.Min(0)),
		validation.Field(&req.Price, validation.NotNil, validation.Min(int64(0))),
		validation.Field(&req.Location, validation.Required, validation.Length(1, 255)),
	)
}

// ToDomain must only be called after Validate succeeded.
func (req *CreateItemRequest) ToDomain() domain.Item {
	return domain.Item{
		Name:        req.Name,
		Description: *req.Description,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
		Location:    req.Location,
	}
}

type Pagination struct {
	Skip  int `form:"skip"`
	Limit int `form:"limit"`
}

func NewPagination() Pagination {
	return Pagination{Limit: DefaultLimit}
}

func (p *Pagination) rules() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&p.Skip, validation.Min(0)),
		validation.Field(&p.Limit, validation.Min(0), validation.Max(MaxLimit)),
	}
}

type ListItemsRequest struct {
	Location string `form:"location"`
	Pagination
}

func NewListItemsRequest() ListItemsRequest {
	return ListItemsRequest{Pagination: NewPagination()}
}

func (req *ListItemsRequest) Validate() error {
	return validation.ValidateStruct(&req.Pagination, req.Pagination.rules()...)
}

func (req *ListItemsRequest) ToFilter() domain.ItemFilter {
	return domain.ItemFilter{
		Location: req.Location,
		Skip:     req.Skip,
		Limit:    req.Limit,
	}
}

type UpdateQuantityRequest struct {
	QuantityChange *int    `form:"quantity_change"`
	Notes          *string `form:"notes"`
}

func (req *UpdateQuantityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.QuantityChange, validation.NotNil, validation.By(nonZero)),
		validation.Field(&req.Notes, validation.NotNil, validation.Length(0, 1000)),
	)
}

func nonZero(value interface{}) error {
	if v, ok := value.(*int); ok && v != nil && *v == 0 {
		return errors.New("must not be zero")
	}

	return nil
}
