package service

import (
	"context"
	"errors"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/client"
	"shopping-backend/internal/dto"
	"shopping-backend/internal/model"
	"shopping-backend/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, userID uint) (*dto.OrderCreateResponse, error)
	GetOrderDetail(ctx context.Context, orderID, userID uint) (*dto.OrderDetailResponse, error)
	GetOrderHistory(ctx context.Context, userID uint) ([]*dto.OrderDetailResponse, error)
}

type orderServiceImpl struct {
	db        *gorm.DB
	rates     client.ExchangeRateClient
	cartRepo  repository.CartItemRepository
	orderRepo repository.OrderRepository
}

func NewOrderService(
	db *gorm.DB,
	rates client.ExchangeRateClient,
	cartRepo repository.CartItemRepository,
	orderRepo repository.OrderRepository,
) OrderService {
	return &orderServiceImpl{
		db:        db,
		rates:     rates,
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
	}
}

// PlaceOrder turns the user's cart into an immutable order: validate the
// cart, fetch the exchange rate, then persist the order with its item
// snapshots and clear the cart in one transaction. Nothing is written before
// the transaction; any failure inside it rolls everything back.
//
// Converted totals are rounded once, half away from zero, to 2 decimal
// places.
func (s *orderServiceImpl) PlaceOrder(ctx context.Context, userID uint) (*dto.OrderCreateResponse, error) {
	cartItems, err := s.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ledgerErr(err)
	}
	if len(cartItems) == 0 {
		return nil, apperr.ErrEmptyCart
	}

	total, err := cartTotal(cartItems)
	if err != nil {
		return nil, err
	}

	rate, err := s.rates.FetchRate(ctx)
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		UserID:         userID,
		TotalPrice:     total,
		ExchangeRate:   rate.Rate,
		ConvertedTotal: decimal.NewFromInt(total).Mul(rate.Rate).Round(2),
		Currency:       rate.Currency,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return err
		}

		orderItems := make([]*model.OrderItem, len(cartItems))
		cartItemIDs := make([]uint, len(cartItems))
		for i, item := range cartItems {
			orderItems[i] = &model.OrderItem{
				OrderID:      order.ID,
				ProductID:    item.ProductID,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
			}
			cartItemIDs[i] = item.ID
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return err
		}

		// The delete is the serialization point between concurrent
		// checkouts of the same cart: whoever deletes fewer rows than
		// they read lost the race and rolls back.
		deleted, err := s.cartRepo.DeleteAllByIDs(ctx, tx, userID, cartItemIDs)
		if err != nil {
			return err
		}
		if deleted != int64(len(cartItemIDs)) {
			return apperr.ErrConcurrentModification
		}

		return nil
	})
	if err != nil {
		return nil, ledgerErr(err)
	}

	return &dto.OrderCreateResponse{OrderID: order.ID}, nil
}

func (s *orderServiceImpl) GetOrderDetail(ctx context.Context, orderID, userID uint) (*dto.OrderDetailResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrOrderNotFound
		}
		return nil, ledgerErr(err)
	}

	if order.UserID != userID {
		return nil, apperr.ErrForbidden
	}

	return dto.FromOrder(order), nil
}

func (s *orderServiceImpl) GetOrderHistory(ctx context.Context, userID uint) ([]*dto.OrderDetailResponse, error) {
	orders, err := s.orderRepo.FindAllByUserID(ctx, userID)
	if err != nil {
		return nil, ledgerErr(err)
	}

	responses := make([]*dto.OrderDetailResponse, len(orders))
	for i, order := range orders {
		responses[i] = dto.FromOrder(order)
	}

	return responses, nil
}

// cartTotal recomputes the aggregate from the recorded unit prices and
// quantities, guarding against tampered or partially written cart rows.
func cartTotal(items []*model.CartItem) (int64, error) {
	var total int64
	for _, item := range items {
		if item.Quantity <= 0 || item.UnitPrice <= 0 {
			return 0, apperr.ErrInvalidCartTotal
		}
		total += item.UnitPrice * int64(item.Quantity)
	}
	if total <= 0 {
		return 0, apperr.ErrInvalidCartTotal
	}
	return total, nil
}
