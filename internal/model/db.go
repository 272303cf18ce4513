package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Password  string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Product struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"size:255;not null"`
	ImageFileName string `gorm:"size:255"`
	Price         int64  `gorm:"not null"` // base currency, whole units
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CartItem freezes the product's name, image and price at insertion time,
// so order items can be copied from the cart line verbatim at checkout.
type CartItem struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"index;not null"`
	ProductID    uint   `gorm:"index;not null"`
	ProductName  string `gorm:"size:255;not null"`
	ProductImage string `gorm:"size:255"`
	Quantity     int32  `gorm:"not null"`
	UnitPrice    int64  `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Order is immutable after creation; no component updates it.
type Order struct {
	ID             uint            `gorm:"primaryKey"`
	UserID         uint            `gorm:"index;not null"`
	TotalPrice     int64           `gorm:"not null"` // base currency, before conversion
	ExchangeRate   decimal.Decimal `gorm:"type:decimal(20,8);not null"`
	ConvertedTotal decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Currency       string          `gorm:"size:8;not null"`
	Items          []OrderItem     `gorm:"foreignKey:OrderID"`
	CreatedAt      time.Time
}

type OrderItem struct {
	ID           uint   `gorm:"primaryKey"`
	OrderID      uint   `gorm:"index;not null"`
	ProductID    uint   `gorm:"index;not null"`
	ProductName  string `gorm:"size:255;not null"`
	ProductImage string `gorm:"size:255"`
	Quantity     int32  `gorm:"not null"`
	UnitPrice    int64  `gorm:"not null"`
	CreatedAt    time.Time
}
