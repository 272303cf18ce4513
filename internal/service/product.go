package service

import (
	"context"

	"shopping-backend/internal/dto"
	"shopping-backend/internal/repository"
)

type ProductService interface {
	FindAllProducts(ctx context.Context) ([]*dto.ProductResponse, error)
}

type productServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
	}
}

func (s *productServiceImpl) FindAllProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, ledgerErr(err)
	}

	responses := make([]*dto.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = dto.FromProduct(product)
	}

	return responses, nil
}
