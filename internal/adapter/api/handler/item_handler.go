package handler

import (
	"lapakin/internal/usecase"
	"lapakin/pkg/errors"
	"lapakin/pkg/logger"
	"lapakin/pkg/response"

	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	itemUseCase *usecase.ItemUseCase
}

func NewItemHandler(itemUseCase *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
	}
}

type createItemRequest struct {
	Seller      string `form:"seller" validate:"required"`
	Address     string `form:"address" validate:"required"`
	Contact     string `form:"contact" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Description string `form:"description" validate:"required"`
	Fields      string `form:"fields"`
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.Validation("No image file provided.", err))
	}

	src, err := file.Open()
	if err != nil {
		logger.Error("Failed to open uploaded image %s: %v", file.Filename, err)
		return response.Error(c, errors.Internal("Unable to read image file", err))
	}
	defer src.Close()

	item, err := h.itemUseCase.CreateItem(
		c.Request().Context(),
		usecase.CreateItemInput{
			Seller:      req.Seller,
			Address:     req.Address,
			Contact:     req.Contact,
			Category:    req.Category,
			Description: req.Description,
			RawFields:   req.Fields,
		},
		src,
		file.Header.Get("Content-Type"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemUseCase.ListItems(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, items)
}
