package repository

import (
	"context"

	"lapakin/internal/domain/entity"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	List(ctx context.Context) ([]*entity.Item, error)
}
