package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one buyer's line for one listing. Price is the running total
// for the line, not the unit price: every quantity change moves it by the
// medicine's current unit price, so it stays a multiple of that price as
// long as the listing price does not change between adjustments.
type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ItemName    string             `bson:"item_name" json:"item_name"`
	BuyerEmail  string             `bson:"buyer_email" json:"buyer_email"`
	SellerEmail string             `bson:"seller_email" json:"seller_email"`
	Image       string             `bson:"image" json:"image"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
