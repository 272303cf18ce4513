package service

import (
	"context"
	"path/filepath"
	"testing"

	"shopping-backend/internal/client"
	"shopping-backend/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, client.Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) *model.User {
	t.Helper()

	user := &model.User{Email: email, Password: password}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) *model.Product {
	t.Helper()

	product := &model.Product{Name: name, ImageFileName: name + ".png", Price: price}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedCartItem(t *testing.T, db *gorm.DB, userID uint, product *model.Product, quantity int32) *model.CartItem {
	t.Helper()

	item := &model.CartItem{
		UserID:       userID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductImage: product.ImageFileName,
		Quantity:     quantity,
		UnitPrice:    product.Price,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

// stubRateClient implements client.ExchangeRateClient; onFetch runs before
// each fetch so tests can interleave work between pricing and commit.
type stubRateClient struct {
	rate    decimal.Decimal
	err     error
	onFetch func()
}

func (s *stubRateClient) FetchRate(context.Context) (*client.ExchangeRate, error) {
	if s.onFetch != nil {
		s.onFetch()
	}
	if s.err != nil {
		return nil, s.err
	}
	return &client.ExchangeRate{Rate: s.rate, Currency: "KRW"}, nil
}

func countRows(t *testing.T, db *gorm.DB, value interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(value).Count(&count).Error)
	return count
}
