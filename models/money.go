package models

import "github.com/shopspring/decimal"

// Prices go over the wire as JSON numbers, the form the catalog, cart and
// existing clients use.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
