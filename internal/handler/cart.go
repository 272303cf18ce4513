package handler

import (
	"net/http"
	"strconv"

	"shopping-backend/internal/dto"
	"shopping-backend/internal/middleware"
	"shopping-backend/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func cartItemIDFromPath(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid cart item id")
	}
	return uint(id), nil
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.CartItemInsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.cartService.AddItem(ctx, userID, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, item)
}

func (h *CartHandler) GetItems(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	items, err := h.cartService.GetItems(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	cartItemID, err := cartItemIDFromPath(c)
	if err != nil {
		return err
	}

	var req dto.CartItemQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.cartService.UpdateQuantity(ctx, userID, cartItemID, req.Quantity); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	cartItemID, err := cartItemIDFromPath(c)
	if err != nil {
		return err
	}

	if err := h.cartService.RemoveItem(ctx, userID, cartItemID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
