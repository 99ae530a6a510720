package handler

import (
	"net/http"
	"strconv"

	"campomarket/internal/app/dto"
	"campomarket/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// cartToDTO собирает витрину корзины: строки, число позиций, подытог,
// доставка и итог
func (h *APIHandler) cartToDTO() dto.CartResponse {
	view := h.Repository.GetCartView()

	items := make([]dto.CartItemResponse, len(view))
	itemCount := 0
	for i, line := range view {
		items[i] = dto.CartItemResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Product:   productToDTO(line.Product),
			Subtotal:  line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).InexactFloat64(),
		}
		itemCount += line.Quantity
	}

	subtotal := h.Repository.CartTotal()
	shipping := decimal.Zero
	if len(view) > 0 {
		shipping = shippingCost
	}

	return dto.CartResponse{
		Items:     items,
		ItemCount: itemCount,
		Subtotal:  subtotal.InexactFloat64(),
		Shipping:  shipping.InexactFloat64(),
		Total:     subtotal.Add(shipping).InexactFloat64(),
	}
}

// GetCart получает корзину
// @Summary Получение корзины
// @Description Возвращает строки корзины с товарами, подытогом, доставкой и итогом
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CartResponse
// @Router /api/cart [get]
func (h *APIHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartToDTO())
}

// AddCartItem добавляет товар в корзину
// @Summary Добавление в корзину
// @Description Добавляет товар в корзину или увеличивает количество существующей строки
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddCartItemRequest true "Товар и количество"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cart/items [post]
func (h *APIHandler) AddCartItem(c *gin.Context) {
	var request dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Repository.GetProduct(request.ProductID); err != nil {
		h.errorResponse(c, http.StatusNotFound, "товар не найден")
		return
	}

	if err := h.Repository.AddToCart(request.ProductID, request.Quantity); err != nil {
		logrus.Error("Error adding to cart: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка добавления в корзину")
		return
	}

	h.successResponse(c, http.StatusOK, "товар добавлен в корзину", h.cartToDTO())
}

// UpdateCartItem изменяет количество в строке корзины
// @Summary Изменение количества
// @Description Устанавливает количество товара в корзине (не меньше 1 и не больше остатка)
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product_id path int true "ID товара"
// @Param request body dto.UpdateCartItemRequest true "Новое количество"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/cart/items/{product_id} [put]
func (h *APIHandler) UpdateCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный ID товара")
		return
	}

	var request dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.Repository.GetProduct(uint(productID))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "товар не найден")
		return
	}

	// Количество ограничивается снизу единицей и сверху остатком на складе
	quantity := request.Quantity
	if quantity < 1 {
		quantity = 1
	}
	if quantity > product.Stock {
		h.errorResponse(c, http.StatusBadRequest, repository.ErrInsufficientStock.Error())
		return
	}

	if err := h.Repository.UpdateCartLine(uint(productID), quantity); err != nil {
		logrus.Error("Error updating cart line: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка изменения корзины")
		return
	}

	h.successResponse(c, http.StatusOK, "корзина обновлена", h.cartToDTO())
}

// RemoveCartItem убирает строку из корзины
// @Summary Удаление из корзины
// @Description Убирает товар из корзины целиком
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param product_id path int true "ID товара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/cart/items/{product_id} [delete]
func (h *APIHandler) RemoveCartItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный ID товара")
		return
	}

	if err := h.Repository.RemoveFromCart(uint(productID)); err != nil {
		logrus.Error("Error removing from cart: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка удаления из корзины")
		return
	}

	h.successResponse(c, http.StatusOK, "товар удален из корзины", h.cartToDTO())
}
