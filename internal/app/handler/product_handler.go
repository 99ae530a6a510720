package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"campomarket/internal/app/ds"
	"campomarket/internal/app/dto"
	"campomarket/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// GetProducts получает каталог товаров
// @Summary Получение списка товаров
// @Description Возвращает каталог с поиском по названию и фильтрами по категории и производителю
// @Tags Products
// @Produce json
// @Param query query string false "Поиск по названию товара"
// @Param category query string false "Фильтр по категории"
// @Param producer_id query int false "Фильтр по производителю"
// @Param featured query bool false "Только первые три товара"
// @Success 200 {object} dto.ProductListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/products [get]
func (h *APIHandler) GetProducts(c *gin.Context) {
	var products []ds.Product

	if producerStr := c.Query("producer_id"); producerStr != "" {
		producerID, err := strconv.ParseUint(producerStr, 10, 32)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "некорректный ID производителя")
			return
		}
		products = h.Repository.ListProductsByProducer(uint(producerID))
	} else if searchQuery := c.Query("query"); searchQuery != "" {
		products = h.Repository.SearchProductsByName(searchQuery)
	} else {
		products = h.Repository.ListProducts()
	}

	if category := c.Query("category"); category != "" {
		if !ds.Category(category).IsValid() {
			h.errorResponse(c, http.StatusBadRequest, "неизвестная категория")
			return
		}
		filtered := products[:0]
		for _, p := range products {
			if p.Category == ds.Category(category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	// Рекомендуемые товары — первые три позиции каталога
	if c.Query("featured") == "true" && len(products) > 3 {
		products = products[:3]
	}

	dtoProducts := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		dtoProducts[i] = productToDTO(p)
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dtoProducts,
		Total:    len(dtoProducts),
	})
}

// GetProduct получает один товар
// @Summary Получение товара
// @Description Возвращает товар по его ID
// @Tags Products
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [get]
func (h *APIHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный ID товара")
		return
	}

	product, err := h.Repository.GetProduct(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "товар не найден")
		return
	}

	c.JSON(http.StatusOK, productToDTO(*product))
}

// CreateProduct создает товар производителя
// @Summary Создание товара
// @Description Добавляет новый товар в каталог текущего производителя
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProductRequest true "Данные товара"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/products [post]
func (h *APIHandler) CreateProduct(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "пользователь не авторизован")
		return
	}

	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	category := ds.Category(request.Category)

	// Без изображения подставляем эмодзи категории
	image := request.Image
	if image == "" {
		image = category.DefaultImage()
	}

	product, err := h.Repository.AddProduct(
		request.Name,
		request.Description,
		decimal.NewFromFloat(request.Price),
		category,
		request.Stock,
		image,
		userID,
	)
	if err != nil {
		logrus.Error("Error creating product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка создания товара")
		return
	}

	h.successResponse(c, http.StatusCreated, "товар добавлен", productToDTO(*product))
}

// UpdateProduct изменяет товар
// @Summary Изменение товара
// @Description Частично обновляет поля товара
// @Tags Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param request body dto.UpdateProductRequest true "Изменяемые поля"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [put]
func (h *APIHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный ID товара")
		return
	}

	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var (
		name, description *string
		price             *decimal.Decimal
		category          *ds.Category
	)
	if request.Name != "" {
		name = &request.Name
	}
	if request.Description != "" {
		description = &request.Description
	}
	if request.Price != 0 {
		p := decimal.NewFromFloat(request.Price)
		price = &p
	}
	if request.Category != "" {
		cat := ds.Category(request.Category)
		category = &cat
	}

	product, err := h.Repository.UpdateProduct(uint(id), name, description, price, category, request.Stock)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(c, http.StatusNotFound, "товар не найден")
			return
		}
		logrus.Error("Error updating product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка изменения товара")
		return
	}

	h.successResponse(c, http.StatusOK, "товар обновлен", productToDTO(*product))
}

// DeleteProduct удаляет товар
// @Summary Удаление товара
// @Description Убирает товар из каталога
// @Tags Products
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/products/{id} [delete]
func (h *APIHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный ID товара")
		return
	}

	// Сначала получаем товар чтобы удалить его изображение из MinIO
	product, _ := h.Repository.GetProduct(uint(id))
	if product != nil && isStoredImage(product.Image) && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteFile(product.Image); err != nil {
			logrus.Warnf("Failed to delete image from MinIO: %v", err)
		}
	}

	if err := h.Repository.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.errorResponse(c, http.StatusNotFound, "товар не найден")
			return
		}
		logrus.Error("Error deleting product: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка удаления товара")
		return
	}

	h.successResponse(c, http.StatusOK, "товар удален", nil)
}

// UploadProductImage загружает фото товара
// @Summary Загрузка изображения товара
// @Description Сохраняет файл в MinIO, старое изображение удаляется; в карточку записывается имя объекта
// @Tags Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID товара"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/products/{id}/image [post]
func (h *APIHandler) UploadProductImage(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "хранилище изображений не настроено")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный ID товара")
		return
	}

	product, err := h.Repository.GetProduct(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "товар не найден")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "файл изображения не передан")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "не удалось прочитать файл")
		return
	}
	defer file.Close()

	fileData, err := io.ReadAll(file)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "не удалось прочитать файл")
		return
	}

	// Удаляем старое изображение из MinIO (если было загружено)
	if isStoredImage(product.Image) {
		if err := h.MinIOClient.DeleteFile(product.Image); err != nil {
			logrus.Warnf("Failed to delete old image %s: %v", product.Image, err)
		}
	}

	filename, err := h.MinIOClient.UploadFile(fileData, fileHeader.Filename)
	if err != nil {
		logrus.Error("Error uploading image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка загрузки изображения")
		return
	}

	// В карточке хранится имя объекта, ссылку выдаем отдельно
	if err := h.Repository.UpdateProductImage(uint(id), filename); err != nil {
		h.errorResponse(c, http.StatusNotFound, "товар не найден")
		return
	}

	imageURL, err := h.MinIOClient.GetFileURL(filename)
	if err != nil {
		logrus.Error("Error generating image URL: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка получения ссылки на изображение")
		return
	}

	h.successResponse(c, http.StatusOK, "изображение загружено", gin.H{
		"filename": filename,
		"url":      imageURL,
	})
}

// isStoredImage отличает объект MinIO от эмодзи-заглушки в поле image
func isStoredImage(image string) bool {
	return strings.HasPrefix(image, "product_")
}

// GetProductImage отдает загруженное изображение товара
// @Summary Получение изображения товара
// @Description Скачивает файл изображения из MinIO
// @Tags Products
// @Produce octet-stream
// @Param id path int true "ID товара"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/products/{id}/image [get]
func (h *APIHandler) GetProductImage(c *gin.Context) {
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "хранилище изображений не настроено")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный ID товара")
		return
	}

	product, err := h.Repository.GetProduct(uint(id))
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "товар не найден")
		return
	}

	if !isStoredImage(product.Image) {
		h.errorResponse(c, http.StatusNotFound, "изображение не загружено")
		return
	}

	exists, err := h.MinIOClient.FileExists(product.Image)
	if err != nil {
		logrus.Error("Error checking image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка проверки изображения")
		return
	}
	if !exists {
		h.errorResponse(c, http.StatusNotFound, "изображение не найдено")
		return
	}

	data, err := h.MinIOClient.DownloadFile(product.Image)
	if err != nil {
		logrus.Error("Error downloading image: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка скачивания изображения")
		return
	}

	c.Data(http.StatusOK, http.DetectContentType(data), data)
}
