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

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler handles HTTP requests for the service and product catalogs.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceCatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateService(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[catalog][handler] create service failed name=%s err=%v", payload.ServiceName, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK("Service created", created))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetServiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Service found", svc))
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list services failed err=%v", err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Services listed", services))
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")

	var payload request.ServiceCatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateService(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		log.Printf("[catalog][handler] update service failed service_id=%s err=%v", id, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Service updated", updated))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteService(c.Request.Context(), id); err != nil {
		log.Printf("[catalog][handler] delete service failed service_id=%s err=%v", id, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Service deleted", nil))
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductCatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateProduct(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[catalog][handler] create product failed name=%s err=%v", payload.ProductName, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.OK("Product created", created))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Product found", product))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list products failed err=%v", err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Products listed", products))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var payload request.ProductCatalogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateProduct(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		log.Printf("[catalog][handler] update product failed product_id=%s err=%v", id, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Product updated", updated))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteProduct(c.Request.Context(), id); err != nil {
		log.Printf("[catalog][handler] delete product failed product_id=%s err=%v", id, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK("Product deleted", nil))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrServiceNameRequired), errors.Is(err, usecase.ErrProductNameRequired),
		errors.Is(err, usecase.ErrNegativePrice), errors.Is(err, usecase.ErrNegativeStock):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
