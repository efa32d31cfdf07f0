package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatus values the system itself writes. The status update
// endpoint stays permissive (any string is stored, converted once at
// the transport edge); inside the module the defined type keeps call
// sites from introducing typos into the ledger.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "pending"
	StatusPaid    PaymentStatus = "paid"
)

// Payment is one settlement record. The ledger is append-only: records
// are never deleted and only the status field is ever rewritten.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	BuyerEmail    string             `bson:"buyer_email" json:"buyer_email"`
	SellerEmail   string             `bson:"seller_email" json:"seller_email"`
	Amount        float64            `bson:"amount" json:"amount"`
	Status        PaymentStatus      `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// SalesSummary holds the three ledger sums. Missing groups are zero,
// never absent.
type SalesSummary struct {
	TotalAmount   float64 `json:"total_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingAmount float64 `json:"pending_amount"`
}
