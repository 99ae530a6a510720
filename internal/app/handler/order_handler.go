package handler

import (
	"errors"
	"net/http"

	"campomarket/internal/app/ds"
	"campomarket/internal/app/dto"
	"campomarket/internal/app/repository"
	"campomarket/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Checkout оформляет заказ из корзины
// @Summary Оформление заказа
// @Description Создает заказ из текущей корзины и очищает ее
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/orders/checkout [post]
func (h *APIHandler) Checkout(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	order, err := h.Repository.Checkout(userID)
	if err != nil {
		if errors.Is(err, repository.ErrEmptyCart) {
			h.errorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		logrus.Error("Error during checkout: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка оформления заказа")
		return
	}

	h.successResponse(c, http.StatusCreated, "заказ оформлен", orderToDTO(*order))
}

// GetOrders получает заказы текущего пользователя
// @Summary Получение заказов
// @Description Покупатель видит свои заказы, производитель — заказы со своими товарами
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.OrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/orders [get]
func (h *APIHandler) GetOrders(c *gin.Context) {
	userID, userRole, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	var orders []ds.Order
	if userRole == role.Producer {
		orders = h.Repository.OrdersForProducer(userID)
	} else {
		orders = h.Repository.OrdersForUser(userID)
	}

	dtoOrders := make([]dto.OrderResponse, len(orders))
	for i, o := range orders {
		dtoOrders[i] = orderToDTO(o)
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{
		Orders: dtoOrders,
		Total:  len(dtoOrders),
	})
}
