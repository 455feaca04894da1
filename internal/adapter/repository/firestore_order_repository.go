package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"lapakin/internal/domain/entity"
	"lapakin/internal/domain/repository"
)

const orderCollection = "orders"

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection(orderCollection).NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	_, err := r.client.Collection(orderCollection).Doc(order.ID).Set(ctx, order)
	if err != nil {
		return databaseError("Failed to place order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	query := r.client.Collection(orderCollection).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	orders := []*entity.Order{}

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, databaseError("Failed to fetch orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, databaseError("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}

	return orders, nil
}
