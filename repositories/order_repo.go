package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookstore/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	singleTimeout = 5 * time.Second
	listTimeout   = 10 * time.Second
)

type OrderRepository interface {
	Insert(ctx context.Context, order models.Order) models.APIResponse[*models.Order]
	FindByID(ctx context.Context, orderID string, userID int) models.APIResponse[*models.Order]
	Delete(ctx context.Context, orderID string, userID int) models.APIResponse[*models.Order]
	ListByUser(ctx context.Context, userID int) models.APIResponse[[]models.Order]
}

type OrderRepo struct {
	coll *mongo.Collection
}

var _ OrderRepository = (*OrderRepo)(nil)

func NewOrderRepo(coll *mongo.Collection) *OrderRepo {
	return &OrderRepo{coll: coll}
}

func ownedBy(id primitive.ObjectID, userID int) bson.M {
	return bson.M{"_id": id, "userId": userID}
}

func (r *OrderRepo) Insert(ctx context.Context, order models.Order) models.APIResponse[*models.Order] {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, order); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("user_id", order.UserID).Msg("insert order failed")
		return models.Fail[*models.Order](fmt.Sprintf("An error occurred while adding the order: %s", err))
	}

	zerolog.Ctx(ctx).Info().Str("order_id", order.ID.Hex()).Int("user_id", order.UserID).Msg("order stored")
	return models.OK("Added Order Successfully", &order)
}

func (r *OrderRepo) FindByID(ctx context.Context, orderID string, userID int) models.APIResponse[*models.Order] {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return models.Fail[*models.Order](fmt.Sprintf("An error occurred while retrieving the order: %s", err))
	}

	order, err := r.findOne(ctx, ownedBy(oid, userID))
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.Fail[*models.Order]("Order not found.")
	case err != nil:
		return models.Fail[*models.Order](fmt.Sprintf("An error occurred while retrieving the order: %s", err))
	}
	return models.OK("Order retrieved successfully.", order)
}

// Delete looks the order up before deleting it so a missing order and a
// failed delete report different messages.
func (r *OrderRepo) Delete(ctx context.Context, orderID string, userID int) models.APIResponse[*models.Order] {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return models.Fail[*models.Order](fmt.Sprintf("An error occurred while deleting the order: %s", err))
	}
	filter := ownedBy(oid, userID)

	order, err := r.findOne(ctx, filter)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return models.Fail[*models.Order]("Order not found.")
	case err != nil:
		return models.Fail[*models.Order](fmt.Sprintf("An error occurred while deleting the order: %s", err))
	}

	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return models.Fail[*models.Order](fmt.Sprintf("An error occurred while deleting the order: %s", err))
	}
	if res.DeletedCount == 0 {
		return models.Fail[*models.Order]("Failed to delete the order.")
	}

	zerolog.Ctx(ctx).Info().Str("order_id", orderID).Int("user_id", userID).Msg("order deleted")
	return models.OK("Order deleted successfully.", order)
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID int) models.APIResponse[[]models.Order] {
	ctx, cancel := context.WithTimeout(ctx, listTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return models.Fail[[]models.Order](fmt.Sprintf("An error occurred while retrieving orders: %s", err))
	}

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return models.Fail[[]models.Order](fmt.Sprintf("An error occurred while retrieving orders: %s", err))
	}

	if len(orders) == 0 {
		return models.OK("No orders found.", []models.Order{})
	}
	return models.OK("Orders retrieved successfully.", orders)
}

func (r *OrderRepo) findOne(ctx context.Context, filter bson.M) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, singleTimeout)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, filter).Decode(&order); err != nil {
		return nil, err
	}
	return &order, nil
}
