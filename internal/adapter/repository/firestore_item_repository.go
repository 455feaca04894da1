package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lapakin/internal/domain/entity"
	"lapakin/internal/domain/repository"
)

const itemCollection = "items"

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		doc := r.client.Collection(itemCollection).NewDoc()
		item.ID = doc.ID
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	if item.Fields == nil {
		item.Fields = map[string]interface{}{}
	}

	_, err := r.client.Collection(itemCollection).Doc(item.ID).Set(ctx, item)
	if err != nil {
		return databaseError("Failed to save item", err)
	}

	return nil
}

func (r *firestoreItemRepository) List(ctx context.Context) ([]*entity.Item, error) {
	query := r.client.Collection(itemCollection).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	items := []*entity.Item{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, databaseError("Failed to fetch items", err)
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, databaseError("Failed to parse item data", err)
		}
		if item.Fields == nil {
			item.Fields = map[string]interface{}{}
		}
		items = append(items, &item)
	}

	return items, nil
}
