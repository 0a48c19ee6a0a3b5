package service

import (
	"context"

	"github.com/google/uuid"

	"invoiceflow/internal/domain"
	"invoiceflow/internal/store"
)

// ProductService defines the product catalog contract. Products are
// templates for invoice line items; stamping one onto an invoice
// copies its fields with no live linkage afterwards.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (domain.Product, error)
	Save(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	products *store.Collection[domain.Product]
}

// NewProductService creates a ProductService over the product collection.
func NewProductService(products *store.Collection[domain.Product]) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *productService) Get(ctx context.Context, id string) (domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *productService) Save(ctx context.Context, product domain.Product) (domain.Product, error) {
	verr := &domain.ValidationError{}
	if product.Name == "" {
		verr.Add("name", "must not be empty")
	}
	if product.Price < 0 {
		verr.Add("price", "must not be negative")
	}
	if verr.HasErrors() {
		return domain.Product{}, verr
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	return s.products.Save(ctx, product)
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.products.DeleteByID(ctx, id)
}
