package models

import "github.com/shopspring/decimal"

// BookDetails is the catalog's view of a book.
type BookDetails struct {
	BookID        int             `json:"bookId"`
	Title         string          `json:"title"`
	Author        string          `json:"author"`
	Description   string          `json:"description"`
	StockQuantity int             `json:"stockQuantity"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
}

type UpdateStockRequest struct {
	StockQuantity int `json:"stockQuantity"`
}
