package models

import "github.com/shopspring/decimal"

// CartItem is a line of the user's cart as served by the cart service.
type CartItem struct {
	BookID      int             `json:"bookId"`
	BookName    string          `json:"bookName"`
	Description string          `json:"description"`
	BookImage   string          `json:"bookImage"`
	Author      string          `json:"author"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type CartData struct {
	CartItems     []CartItem      `json:"cartItems"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
}
