package models

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderStatusPending = "Pending"

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        int                `bson:"userId" json:"userId"`
	OrderItems    []OrderItem        `bson:"orderItems" json:"orderItems"`
	TotalQuantity int                `bson:"totalQuantity" json:"totalQuantity"`
	Date          time.Time          `bson:"date" json:"date"`
	TotalPrice    decimal.Decimal    `bson:"totalPrice" json:"totalPrice"`
	AddressID     string             `bson:"addressId" json:"addressId"`
	Status        string             `bson:"status" json:"status"`
}

type OrderItem struct {
	BookID   int `bson:"bookId" json:"bookId"`
	Quantity int `bson:"quantity" json:"quantity"`
}

type AddToOrderRequest struct {
	AddressID string `json:"addressId"`
}

// OrderResponse is an order as listed to its owner, with each line item
// re-resolved against the catalog at read time.
type OrderResponse struct {
	ID            string             `json:"id"`
	UserID        int                `json:"userId"`
	OrderItems    []OrderItemDetails `json:"orderItems"`
	TotalQuantity int                `json:"totalQuantity"`
	Date          time.Time          `json:"date"`
	TotalPrice    decimal.Decimal    `json:"totalPrice"`
	AddressID     string             `json:"addressId"`
	Status        string             `json:"status"`
}

type OrderItemDetails struct {
	BookID    int             `json:"bookId"`
	Quantity  int             `json:"quantity"`
	Title     string          `json:"title"`
	BookPrice decimal.Decimal `json:"bookPrice"`
	Author    string          `json:"author"`
	Image     string          `json:"image"`
}
