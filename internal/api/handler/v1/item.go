package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/inventory-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/inventory-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/inventory-api/internal/domain"
	"github.com/vietanh2810/inventory-api/internal/service"
)

const (
	msgRetailDataInitialized = "Retail data initialized successfully"
	msgQuantityUpdated       = "Quantity updated successfully"
)

type ItemService interface {
	CreateItem(ctx context.Context, item domain.Item) (domain.Item, error)
	GetItem(ctx context.Context, id uint) (domain.Item, error)
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error)
	AdjustQuantity(ctx context.Context, id uint, quantityChange int, notes string) (domain.Item, error)
	InitializeRetailData(ctx context.Context) (int, error)
}

type ItemHandler struct {
	svc ItemService
}

func NewItemHandler(svc ItemService) *ItemHandler {
	return &ItemHandler{
		svc: svc,
	}
}

// HandleCreateItem godoc
// @Summary      Create an item
// @Description  Stores a new inventory item. Prices are in minor units (cents).
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateItemRequest  true  "Item details"
// @Success      200    {object}  domain.Item
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /items/ [post]
func (h *ItemHandler) HandleCreateItem(ctx *gin.Context) {
	var input request.CreateItemRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.CreateItem(ctx.Request.Context(), input.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateItem -> h.svc.CreateItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleInitializeRetailData godoc
// @Summary      Reset demonstration data
// @Description  Deletes every item and transaction, then loads the retail catalog with its initial sales and restocks.
// @Tags         items
// @Produce      json
// @Success      200  {object}  response.InitializeRetailDataResponse
// @Failure      500  {object}  response.Err
// @Router       /initialize-retail-data [post]
func (h *ItemHandler) HandleInitializeRetailData(ctx *gin.Context) {
	added, err := h.svc.InitializeRetailData(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleInitializeRetailData -> h.svc.InitializeRetailData -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.InitializeRetailDataResponse{
		Message:    msgRetailDataInitialized,
		ItemsAdded: added,
	})
}

// HandleListItems godoc
// @Summary      List items
// @Tags         items
// @Produce      json
// @Param        location  query     string  false  "Exact location"
// @Param        skip      query     int     false  "Offset"          default(0)
// @Param        limit     query     int     false  "Maximum results" default(100)
// @Success      200       {array}   domain.Item
// @Failure      400       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /items/ [get]
func (h *ItemHandler) HandleListItems(ctx *gin.Context) {
	input := request.NewListItemsRequest()
	if err := ctx.ShouldBindQuery(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	items, err := h.svc.ListItems(ctx.Request.Context(), input.ToFilter())
	if err != nil {
		err = fmt.Errorf("HandleListItems -> h.svc.ListItems -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	if items == nil {
		items = []domain.Item{}
	}

	ctx.JSON(http.StatusOK, items)
}

// HandleGetItem godoc
// @Summary      Get an item
// @Tags         items
// @Produce      json
// @Param        itemID  path      int  true  "Item ID"
// @Success      200     {object}  domain.Item
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /items/{itemID} [get]
func (h *ItemHandler) HandleGetItem(ctx *gin.Context) {
	itemID, respErr := parseItemID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	item, err := h.svc.GetItem(ctx.Request.Context(), itemID)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
			return
		}

		err = fmt.Errorf("HandleGetItem -> h.svc.GetItem -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// HandleUpdateQuantity godoc
// @Summary      Adjust item quantity
// @Description  Applies a signed quantity change and records a SALE (negative) or RESTOCK (positive) transaction atomically.
// @Tags         items
// @Produce      json
// @Param        itemID           path      int     true  "Item ID"
// @Param        quantity_change  query     int     true  "Signed quantity change, not zero"
// @Param        notes            query     string  true  "Free-form note stored on the transaction"
// @Success      200              {object}  response.UpdateQuantityResponse
// @Failure      400              {object}  response.Err
// @Failure      404              {object}  response.Err
// @Failure      500              {object}  response.Err
// @Router       /items/{itemID}/quantity [put]
func (h *ItemHandler) HandleUpdateQuantity(ctx *gin.Context) {
	itemID, respErr := parseItemID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.UpdateQuantityRequest
	if err := ctx.ShouldBindQuery(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	item, err := h.svc.AdjustQuantity(ctx.Request.Context(), itemID, *input.QuantityChange, *input.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrItemNotFound):
			response.RenderErr(ctx, response.ErrNotFound("item", "ID", itemID))
		case errors.Is(err, service.ErrInsufficientQuantity):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientQuantity))
		case errors.Is(err, service.ErrInvalidTransaction):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidTransaction))
		case errors.Is(err, service.ErrQuantityOutOfRange):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrQuantityOutOfRange))
		default:
			err = fmt.Errorf("HandleUpdateQuantity -> h.svc.AdjustQuantity -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.UpdateQuantityResponse{
		Message:     msgQuantityUpdated,
		NewQuantity: item.Quantity,
	})
}

func parseItemID(ctx *gin.Context) (uint, *response.Err) {
	itemID, err := strconv.ParseUint(ctx.Param("itemID"), 10, 64)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid item ID: %w", err))
	}

	return uint(itemID), nil
}
