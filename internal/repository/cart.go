package repository

import (
	"context"

	"shopping-backend/internal/model"

	"gorm.io/gorm"
)

type CartItemRepository interface {
	// FindByUserID returns the user's cart lines in insertion order, so
	// order items are created deterministically at checkout.
	FindByUserID(ctx context.Context, userID uint) ([]*model.CartItem, error)
	FindByID(ctx context.Context, cartItemID uint) (*model.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	UpdateQuantity(ctx context.Context, cartItemID uint, quantity int32) error
	Delete(ctx context.Context, cartItemID uint) error
	// DeleteAllByIDs removes the given cart lines of one user inside tx and
	// reports how many rows were actually deleted, so the caller can detect
	// a cart consumed by a concurrent checkout.
	DeleteAllByIDs(ctx context.Context, tx *gorm.DB, userID uint, cartItemIDs []uint) (int64, error)
}

type cartItemRepoImpl struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepository {
	return &cartItemRepoImpl{
		db: db,
	}
}

func (r *cartItemRepoImpl) FindByUserID(ctx context.Context, userID uint) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&items).
		Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartItemRepoImpl) FindByID(ctx context.Context, cartItemID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("id = ?", cartItemID).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *cartItemRepoImpl) FindByUserAndProduct(ctx context.Context, userID, productID uint) (*model.CartItem, error) {
	var item model.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error

	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (r *cartItemRepoImpl) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartItemRepoImpl) UpdateQuantity(ctx context.Context, cartItemID uint, quantity int32) error {
	return r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ?", cartItemID).
		Update("quantity", quantity).Error
}

func (r *cartItemRepoImpl) Delete(ctx context.Context, cartItemID uint) error {
	return r.db.WithContext(ctx).
		Where("id = ?", cartItemID).
		Delete(&model.CartItem{}).Error
}

func (r *cartItemRepoImpl) DeleteAllByIDs(ctx context.Context, tx *gorm.DB, userID uint, cartItemIDs []uint) (int64, error) {
	result := tx.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, cartItemIDs).
		Delete(&model.CartItem{})

	return result.RowsAffected, result.Error
}
