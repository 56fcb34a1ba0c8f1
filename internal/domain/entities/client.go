package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Monetary amounts serialize as plain JSON numbers ("1500.00"-style
	// strings would break agents that do arithmetic on tool payloads).
	decimal.MarshalJSONWithoutQuotes = true
}

// Client is a construction customer that owns estimates and invoices.
//
// Storage model (DynamoDB):
//   - PK: id
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	ZipCode   string    `json:"zip_code"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
