package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Advertisement is a seller's request to promote a listing. Its flag is
// kept in step with the medicine's flag by the promotion service; the
// item name doubles as the toggle key.
type Advertisement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ItemName    string             `bson:"item_name" json:"item_name"`
	SellerEmail string             `bson:"seller_email" json:"seller_email"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	Flag        PromotionFlag      `bson:"promotion_flag" json:"promotion_flag"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// SliderItem is one entry of the homepage slider. Its presence in the
// collection is the source of truth for "currently displayed".
type SliderItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ItemName    string             `bson:"item_name" json:"item_name"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
