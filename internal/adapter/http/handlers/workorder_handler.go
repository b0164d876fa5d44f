package handlers

import (
	"errors"
	"log"
	"net/http"

	request "garagemate/internal/adapter/http/dto/request"
	response "garagemate/internal/adapter/http/dto/response"
	"garagemate/internal/usecase"
	"garagemate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)

// WorkOrderHandler handles HTTP requests for work orders.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder prices and persists a new work order.
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[workorder][handler] create invalid payload err=%v", err)
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	input, err := payload.ToInput()
	if err != nil {
		log.Printf("[workorder][handler] create invalid fields err=%v", err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Create(c.Request.Context(), input)
	if err != nil {
		log.Printf("[workorder][handler] create failed customer_id=%s err=%v", input.CustomerID, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workorder][handler] create success serial=%s total=%.2f", result.Order.Serial, result.Order.TotalAmount)

	c.JSON(http.StatusCreated, response.OK("Work order created", response.FromWorkOrderResult(result)))
}

// UpdateWorkOrder applies a partial update; totals are recomputed server-side.
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	id := c.Param("id")

	var payload request.WorkOrderPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[workorder][handler] update invalid payload id=%s err=%v", id, err)
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	patch, err := payload.ToPatch()
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		log.Printf("[workorder][handler] update failed id=%s err=%v", id, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workorder][handler] update success serial=%s status=%s", updated.Serial, updated.Status)

	c.JSON(http.StatusOK, response.OK("Work order updated", response.FromWorkOrder(updated)))
}

// DeleteWorkOrder removes an order and compensates its side effects.
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[workorder][handler] delete failed id=%s err=%v", id, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[workorder][handler] delete success id=%s", id)

	c.JSON(http.StatusOK, response.OK("Work order deleted", nil))
}

// GetWorkOrder returns one order with its customer and vehicle resolved.
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id := c.Param("id")

	result, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Work order found", response.FromWorkOrderResult(result)))
}

// ListWorkOrders returns orders, optionally narrowed by date/month/year.
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	filter, err := request.ParseDateFilter(c.Query("date"), c.Query("month"), c.Query("year"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orders, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[workorder][handler] list failed err=%v", err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Work orders listed", response.FromWorkOrders(orders)))
}

// ListWorkOrdersByVehicle returns the service history of one vehicle.
func (h *WorkOrderHandler) ListWorkOrdersByVehicle(c *gin.Context) {
	vehicleID := c.Param("vehicle_id")

	orders, err := h.usecase.ListByVehicleID(c.Request.Context(), vehicleID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK("Work orders listed", response.FromWorkOrders(orders)))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrInvalidDiscountField), errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Invalid discount", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidStatusField), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid work order status", http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidDateField):
		return pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerRequired), errors.Is(err, usecase.ErrInvalidServiceLine),
		errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentSplitMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_SPLIT_MISMATCH", "Cash and UPI amounts must add up to the total", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainError("INSUFFICIENT_STOCK", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderFinalized):
		return pkg.NewDomainErrorSimple("WORK_ORDER_FINALIZED", "Work order already finalized", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
