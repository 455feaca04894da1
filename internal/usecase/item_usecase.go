package usecase

import (
	"context"
	"encoding/json"
	"io"

	"lapakin/internal/domain/entity"
	"lapakin/internal/domain/repository"
	"lapakin/internal/domain/service"
	"lapakin/pkg/errors"
)

type ItemUseCase struct {
	itemRepo repository.ItemRepository
	storage  service.ImageStorage
}

func NewItemUseCase(itemRepo repository.ItemRepository, storage service.ImageStorage) *ItemUseCase {
	return &ItemUseCase{
		itemRepo: itemRepo,
		storage:  storage,
	}
}

type CreateItemInput struct {
	Seller      string
	Address     string
	Contact     string
	Category    string
	Description string
	// RawFields is the serialized attributes mapping from the form,
	// empty when the client sent none.
	RawFields string
}

// CreateItem uploads the image first, then persists the record with the
// returned URL. A storage failure aborts before anything is written to the
// document store; a record-persist failure leaves the uploaded image behind.
func (uc *ItemUseCase) CreateItem(ctx context.Context, input CreateItemInput, image io.Reader, contentType string) (*entity.Item, error) {
	if image == nil {
		return nil, errors.Validation("No image file provided.", nil)
	}

	fields, err := parseFields(input.RawFields)
	if err != nil {
		return nil, err
	}

	imageURL, err := uc.storage.Upload(ctx, image, contentType)
	if err != nil {
		return nil, err
	}

	item := &entity.Item{
		Seller:      input.Seller,
		Address:     input.Address,
		Contact:     input.Contact,
		Category:    input.Category,
		Description: input.Description,
		Fields:      fields,
		ImageURL:    imageURL,
	}

	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (uc *ItemUseCase) ListItems(ctx context.Context) ([]*entity.Item, error) {
	return uc.itemRepo.List(ctx)
}

// parseFields turns the serialized attributes mapping into a map. Absence
// yields an empty map; malformed input is a client error, not a server fault.
func parseFields(raw string) (map[string]interface{}, error) {
	if raw == "" {
		return map[string]interface{}{}, nil
	}

	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, errors.Validation("Invalid fields payload", err)
	}
	if fields == nil {
		fields = map[string]interface{}{}
	}

	return fields, nil
}
