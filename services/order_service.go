package services

import (
	"context"
	"fmt"
	"time"

	"bookstore/external"
	"bookstore/models"
	"bookstore/repositories"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	AddToOrder(ctx context.Context, userID int, req models.AddToOrderRequest, token string) models.APIResponse[*models.Order]
	DeleteOrder(ctx context.Context, orderID string, userID int) models.APIResponse[*models.Order]
	GetAllOrders(ctx context.Context, userID int) models.APIResponse[[]models.OrderResponse]
}

type orderService struct {
	external external.Service
	orders   repositories.OrderRepository
	now      func() time.Time
}

func NewOrderService(ext external.Service, orders repositories.OrderRepository) OrderService {
	return &orderService{external: ext, orders: orders, now: time.Now}
}

// AddToOrder turns the caller's cart into a persisted order. Items are
// processed one at a time and nothing is compensated when a later step
// fails: stock already decremented and cart lines already removed stay that
// way. Stock is written as read-value minus quantity, so concurrent
// checkouts of the same book can lose a decrement.
func (s *orderService) AddToOrder(ctx context.Context, userID int, req models.AddToOrderRequest, token string) models.APIResponse[*models.Order] {
	log := zerolog.Ctx(ctx).With().Int("user_id", userID).Logger()

	cart := s.external.GetCartItems(ctx, token)
	if cart == nil || len(cart.CartItems) == 0 {
		return models.Fail[*models.Order]("Cart is empty")
	}

	order := models.Order{
		UserID:     userID,
		OrderItems: []models.OrderItem{},
		Date:       s.now().UTC(),
		TotalPrice: decimal.Zero,
		AddressID:  req.AddressID,
		Status:     models.OrderStatusPending,
	}

	for _, item := range cart.CartItems {
		book := s.external.BookExists(ctx, item.BookID)
		if book == nil {
			log.Warn().Int("book_id", item.BookID).Msg("checkout aborted: book missing")
			return models.Fail[*models.Order](fmt.Sprintf("Book with ID %d not found!", item.BookID))
		}

		order.OrderItems = append(order.OrderItems, models.OrderItem{BookID: item.BookID, Quantity: item.Quantity})
		order.TotalQuantity += item.Quantity
		order.TotalPrice = order.TotalPrice.Add(book.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))

		stock := s.external.UpdateStock(ctx, item.BookID, book.StockQuantity-item.Quantity, token)
		if !stock.Success {
			log.Warn().Int("book_id", item.BookID).Str("reason", stock.Message).Msg("checkout aborted: stock update failed")
			return models.Fail[*models.Order](fmt.Sprintf("Failed to update stock for book ID %d: %s", item.BookID, stock.Message))
		}

		// Result ignored: a failed removal leaves the line in the cart even
		// though the order will include it.
		_ = s.external.RemoveFromCart(ctx, userID, item.BookID, token)
	}

	return s.orders.Insert(ctx, order)
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID string, userID int) models.APIResponse[*models.Order] {
	if found := s.orders.FindByID(ctx, orderID, userID); !found.Success {
		return models.Fail[*models.Order]("Order not found or you are not authorized to delete it.")
	}

	if deleted := s.orders.Delete(ctx, orderID, userID); !deleted.Success {
		zerolog.Ctx(ctx).Warn().Str("order_id", orderID).Str("reason", deleted.Message).Msg("delete order failed")
		return models.Fail[*models.Order]("Failed to delete the order.")
	}
	return models.OK[*models.Order]("Order deleted successfully.", nil)
}

// GetAllOrders lists the caller's orders with each line item re-resolved
// against the catalog. Items whose book no longer exists are left out; the
// stored total is returned as it was at checkout.
func (s *orderService) GetAllOrders(ctx context.Context, userID int) models.APIResponse[[]models.OrderResponse] {
	stored := s.orders.ListByUser(ctx, userID)
	if !stored.Success {
		return models.Fail[[]models.OrderResponse](stored.Message)
	}

	enriched := make([]models.OrderResponse, 0, len(stored.Data))
	for _, order := range stored.Data {
		resp := models.OrderResponse{
			ID:            order.ID.Hex(),
			UserID:        order.UserID,
			OrderItems:    []models.OrderItemDetails{},
			TotalQuantity: order.TotalQuantity,
			Date:          order.Date,
			TotalPrice:    order.TotalPrice,
			AddressID:     order.AddressID,
			Status:        order.Status,
		}

		for _, item := range order.OrderItems {
			book := s.external.BookExists(ctx, item.BookID)
			if book == nil {
				continue
			}
			resp.OrderItems = append(resp.OrderItems, models.OrderItemDetails{
				BookID:    item.BookID,
				Quantity:  item.Quantity,
				Title:     book.Title,
				BookPrice: book.Price,
				Author:    book.Author,
				Image:     book.Image,
			})
		}

		enriched = append(enriched, resp)
	}

	return models.OK("Orders retrieved successfully.", enriched)
}
