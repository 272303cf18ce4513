package service

import (
	"context"
	"errors"
	"testing"

	"shopping-backend/internal/apperr"
	"shopping-backend/internal/dto"
	"shopping-backend/internal/model"
	"shopping-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(db *gorm.DB) CartService {
	return NewCartService(
		repository.NewProductRepository(db),
		repository.NewCartItemRepository(db),
	)
}

func TestAddItem_SnapshotsProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "user1@shopping.com", "password1")
	product := seedProduct(t, db, "Chicken", 20000)
	svc := newCartService(db)

	item, err := svc.AddItem(context.Background(), user.ID, &dto.CartItemInsertRequest{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, "Chicken", item.Name)
	assert.Equal(t, int64(20000), item.UnitPrice)
	assert.Equal(t, int32(1), item.Quantity)

	// catalog price change must not touch the cart line
	require.NoError(t, db.Model(&model.Product{}).
		Where("id = ?", product.ID).
		Update("price", 30000).Error)

	items, err := svc.GetItems(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(20000), items[0].UnitPrice)
}

func TestAddItem_IncrementsExistingLine(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "user1@shopping.com", "password1")
	product := seedProduct(t, db, "Chicken", 20000)
	svc := newCartService(db)

	_, err := svc.AddItem(context.Background(), user.ID, &dto.CartItemInsertRequest{ProductID: product.ID})
	require.NoError(t, err)
	item, err := svc.AddItem(context.Background(), user.ID, &dto.CartItemInsertRequest{ProductID: product.ID})
	require.NoError(t, err)
	assert.Equal(t, int32(2), item.Quantity)

	items, err := svc.GetItems(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(2), items[0].Quantity)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "user1@shopping.com", "password1")
	svc := newCartService(db)

	_, err := svc.AddItem(context.Background(), user.ID, &dto.CartItemInsertRequest{ProductID: 9999})
	assert.True(t, errors.Is(err, apperr.ErrProductNotFound))
}

func TestUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "user1@shopping.com", "password1")
	product := seedProduct(t, db, "Chicken", 20000)
	item := seedCartItem(t, db, user.ID, product, 1)
	svc := newCartService(db)

	require.NoError(t, svc.UpdateQuantity(context.Background(), user.ID, item.ID, 5))

	items, err := svc.GetItems(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int32(5), items[0].Quantity)

	// zero removes the line
	require.NoError(t, svc.UpdateQuantity(context.Background(), user.ID, item.ID, 0))

	items, err = svc.GetItems(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateQuantity_OtherUsersItem(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner@shopping.com", "password1")
	other := seedUser(t, db, "other@shopping.com", "password2")
	product := seedProduct(t, db, "Chicken", 20000)
	item := seedCartItem(t, db, owner.ID, product, 1)
	svc := newCartService(db)

	err := svc.UpdateQuantity(context.Background(), other.ID, item.ID, 5)
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

func TestRemoveItem(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "user1@shopping.com", "password1")
	product := seedProduct(t, db, "Chicken", 20000)
	item := seedCartItem(t, db, user.ID, product, 1)
	svc := newCartService(db)

	require.NoError(t, svc.RemoveItem(context.Background(), user.ID, item.ID))
	assert.Zero(t, countRows(t, db, &model.CartItem{}))

	err := svc.RemoveItem(context.Background(), user.ID, item.ID)
	assert.True(t, errors.Is(err, apperr.ErrCartItemNotFound))
}
