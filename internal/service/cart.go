package service

import (
	"context"
	"errors"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/dto"
	"shopping-backend/internal/model"
	"shopping-backend/internal/repository"

	"gorm.io/gorm"
)

type CartService interface {
	AddItem(ctx context.Context, userID uint, req *dto.CartItemInsertRequest) (*dto.CartItemResponse, error)
	GetItems(ctx context.Context, userID uint) ([]*dto.CartItemResponse, error)
	UpdateQuantity(ctx context.Context, userID, cartItemID uint, quantity int32) error
	RemoveItem(ctx context.Context, userID, cartItemID uint) error
}

type cartServiceImpl struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartItemRepository
}

func NewCartService(
	productRepo repository.ProductRepository,
	cartRepo repository.CartItemRepository,
) CartService {
	return &cartServiceImpl{
		productRepo: productRepo,
		cartRepo:    cartRepo,
	}
}

// AddItem puts one unit of the product into the user's cart, or bumps the
// quantity when the product is already there. The product's name, image and
// price are frozen into the cart line at this point.
func (s *cartServiceImpl) AddItem(ctx context.Context, userID uint, req *dto.CartItemInsertRequest) (*dto.CartItemResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrProductNotFound
		}
		return nil, ledgerErr(err)
	}

	existing, err := s.cartRepo.FindByUserAndProduct(ctx, userID, product.ID)
	if err == nil {
		if err := s.cartRepo.UpdateQuantity(ctx, existing.ID, existing.Quantity+1); err != nil {
			return nil, ledgerErr(err)
		}
		existing.Quantity++
		return dto.FromCartItem(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ledgerErr(err)
	}

	item := &model.CartItem{
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.ImageFileName,
		Quantity:     1,
		UnitPrice:    product.Price,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, ledgerErr(err)
	}

	return dto.FromCartItem(item), nil
}

func (s *cartServiceImpl) GetItems(ctx context.Context, userID uint) ([]*dto.CartItemResponse, error) {
	items, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ledgerErr(err)
	}

	responses := make([]*dto.CartItemResponse, len(items))
	for i, item := range items {
		responses[i] = dto.FromCartItem(item)
	}

	return responses, nil
}

// UpdateQuantity sets the line's quantity; zero or less removes the line.
func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, userID, cartItemID uint, quantity int32) error {
	item, err := s.ownedItem(ctx, userID, cartItemID)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return ledgerErr(s.cartRepo.Delete(ctx, item.ID))
	}
	return ledgerErr(s.cartRepo.UpdateQuantity(ctx, item.ID, quantity))
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, cartItemID uint) error {
	item, err := s.ownedItem(ctx, userID, cartItemID)
	if err != nil {
		return err
	}
	return ledgerErr(s.cartRepo.Delete(ctx, item.ID))
}

func (s *cartServiceImpl) ownedItem(ctx context.Context, userID, cartItemID uint) (*model.CartItem, error) {
	item, err := s.cartRepo.FindByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrCartItemNotFound
		}
		return nil, ledgerErr(err)
	}
	if item.UserID != userID {
		return nil, apperr.ErrForbidden
	}
	return item, nil
}
