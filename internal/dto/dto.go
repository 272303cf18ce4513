package dto

import (
	"time"

	"shopping-backend/internal/model"

	"github.com/shopspring/decimal"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type ProductResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ImageFileName string `json:"imageFileName"`
	Price         int64  `json:"price"`
}

func FromProduct(p *model.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		ImageFileName: p.ImageFileName,
		Price:         p.Price,
	}
}

type CartItemInsertRequest struct {
	ProductID uint `json:"productId"`
}

type CartItemQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

type CartItemResponse struct {
	ID            uint   `json:"cartItemId"`
	ProductID     uint   `json:"productId"`
	Name          string `json:"name"`
	ImageFileName string `json:"imageFileName"`
	UnitPrice     int64  `json:"price"`
	Quantity      int32  `json:"quantity"`
}

func FromCartItem(item *model.CartItem) *CartItemResponse {
	return &CartItemResponse{
		ID:            item.ID,
		ProductID:     item.ProductID,
		Name:          item.ProductName,
		ImageFileName: item.ProductImage,
		UnitPrice:     item.UnitPrice,
		Quantity:      item.Quantity,
	}
}

type OrderCreateResponse struct {
	OrderID uint `json:"orderId"`
}

type OrderItemResponse struct {
	ProductID     uint   `json:"productId"`
	Name          string `json:"name"`
	ImageFileName string `json:"imageFileName"`
	UnitPrice     int64  `json:"price"`
	Quantity      int32  `json:"quantity"`
}

type OrderDetailResponse struct {
	OrderID        uint                 `json:"orderId"`
	TotalPrice     int64                `json:"totalPrice"`
	ExchangeRate   decimal.Decimal      `json:"exchangeRate"`
	ConvertedTotal decimal.Decimal      `json:"convertedTotal"`
	Currency       string               `json:"currency"`
	CreatedAt      time.Time            `json:"createdAt"`
	Items          []*OrderItemResponse `json:"items"`
}

func FromOrder(order *model.Order) *OrderDetailResponse {
	items := make([]*OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = &OrderItemResponse{
			ProductID:     item.ProductID,
			Name:          item.ProductName,
			ImageFileName: item.ProductImage,
			UnitPrice:     item.UnitPrice,
			Quantity:      item.Quantity,
		}
	}

	return &OrderDetailResponse{
		OrderID:        order.ID,
		TotalPrice:     order.TotalPrice,
		ExchangeRate:   order.ExchangeRate,
		ConvertedTotal: order.ConvertedTotal,
		Currency:       order.Currency,
		CreatedAt:      order.CreatedAt,
		Items:          items,
	}
}
