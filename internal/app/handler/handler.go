package handler

import (
	"fmt"

	"campomarket/internal/app/ds"
	"campomarket/internal/app/dto"
	"campomarket/internal/app/repository"
	"campomarket/internal/app/role"
	"campomarket/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

// Фиксированная стоимость доставки (считается только в витрине корзины,
// в сумму заказа не входит)
var shippingCost = decimal.RequireFromString("5.00")

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Consumer, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// ============ Преобразование в DTO ============

func productToDTO(p ds.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    string(p.Category),
		Stock:       p.Stock,
		ProducerID:  p.ProducerID,
		Image:       p.Image,
	}
}

func orderToDTO(o ds.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   productToDTO(item.Product),
			Subtotal:  item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).InexactFloat64(),
		}
	}
	return dto.OrderResponse{
		ID:     o.ID,
		UserID: o.UserID,
		Items:  items,
		Total:  o.Total.InexactFloat64(),
		Date:   o.Date,
		Status: string(o.Status),
	}
}

func userToDTO(u ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    string(u.Role),
		Phone:   u.Phone,
		Address: u.Address,
	}
}
