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

var errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)

// VehicleHandler handles HTTP requests for vehicles.

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[vehicle][handler] create failed regno=%s err=%v", payload.RegistrationNumber, err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[vehicle][handler] create success vehicle_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.OK("Vehicle created", created))
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Vehicle found", vehicle))
}

// ListVehicles lists all vehicles, or one customer's when customer_id is set.
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	var (
		vehicles interface{}
		err      error
	)
	if customerID := c.Query("customer_id"); customerID != "" {
		vehicles, err = h.usecase.ListByCustomerID(c.Request.Context(), customerID)
	} else {
		vehicles, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		log.Printf("[vehicle][handler] list failed err=%v", err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Vehicles listed", vehicles))
}

func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	id := c.Param("id")

	var payload request.VehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		log.Printf("[vehicle][handler] update failed vehicle_id=%s err=%v", id, err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Vehicle updated", updated))
}

func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[vehicle][handler] delete failed vehicle_id=%s err=%v", id, err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Vehicle deleted", nil))
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrRegistrationRequired), errors.Is(err, usecase.ErrCustomerRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRegistrationTaken):
		return pkg.NewDomainErrorSimple("REGISTRATION_TAKEN", "Registration number already registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
