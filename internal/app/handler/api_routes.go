package handler

import (
	"campomarket/internal/app/middleware"
	"campomarket/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Товары (Products) - публичный каталог и управление для производителей ============
	products := api.Group("/products")
	{
		// Публичные эндпоинты (без авторизации)
		products.GET("", h.GetProducts)               // GET каталог с поиском и фильтрами
		products.GET("/:id", h.GetProduct)            // GET одна карточка
		products.GET("/:id/image", h.GetProductImage) // GET изображение из MinIO

		// Только для производителей (управление каталогом)
		products.POST("", authMiddleware.WithAuthCheck(role.Producer), h.CreateProduct)                // POST создание
		products.PUT("/:id", authMiddleware.WithAuthCheck(role.Producer), h.UpdateProduct)             // PUT изменение
		products.DELETE("/:id", authMiddleware.WithAuthCheck(role.Producer), h.DeleteProduct)          // DELETE удаление
		products.POST("/:id/image", authMiddleware.WithAuthCheck(role.Producer), h.UploadProductImage) // POST изображение
	}

	// ============ Корзина (Cart) - для авторизованных пользователей ============
	cart := api.Group("/cart")
	cart.Use(authMiddleware.WithAuthCheck(role.Consumer, role.Producer))
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddCartItem)
		cart.PUT("/items/:product_id", h.UpdateCartItem)
		cart.DELETE("/items/:product_id", h.RemoveCartItem)
	}

	// ============ Заказы (Orders) - для авторизованных пользователей ============
	orders := api.Group("/orders")
	orders.Use(authMiddleware.WithAuthCheck(role.Consumer, role.Producer))
	{
		orders.POST("/checkout", h.Checkout)
		orders.GET("", h.GetOrders)
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Consumer, role.Producer), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Consumer, role.Producer), h.AuthHandler.UpdateProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Consumer, role.Producer), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
