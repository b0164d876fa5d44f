package request

import "garagemate/internal/domain/entities"

type ServiceCatalogRequest struct {
	ServiceName string  `json:"service_name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	IsOffer     bool    `json:"is_offer"`
}

func (r ServiceCatalogRequest) ToEntity() entities.Service {
	return entities.Service{
		ServiceName: r.ServiceName,
		Description: r.Description,
		Price:       r.Price,
		IsOffer:     r.IsOffer,
	}
}

type ProductCatalogRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Brand       string  `json:"brand"`
}

func (r ProductCatalogRequest) ToEntity() entities.Product {
	return entities.Product{
		ProductName: r.ProductName,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		Brand:       r.Brand,
	}
}
