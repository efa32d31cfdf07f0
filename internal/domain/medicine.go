package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromotionFlag mirrors SliderItem presence: a medicine is "advertised"
// exactly while a slider entry with the same name exists.
type PromotionFlag string

const (
	Advertised    PromotionFlag = "advertised"
	NotAdvertised PromotionFlag = "not-advertised"
)

type Medicine struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name               string             `bson:"name" json:"name"`
	Company            string             `bson:"company" json:"company"`
	Image              string             `bson:"image" json:"image"`
	Description        string             `bson:"description" json:"description"`
	SellerEmail        string             `bson:"seller_email" json:"seller_email"`
	Price              float64            `bson:"price" json:"price"`
	DiscountPercentage float64            `bson:"discount_percentage" json:"discount_percentage"`
	Flag               PromotionFlag      `bson:"promotion_flag" json:"promotion_flag"`
	CreatedAt          time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at" json:"updated_at"`
}

// MedicineUpdate carries the seller-editable fields of a listing.
type MedicineUpdate struct {
	Company            string  `json:"company"`
	Image              string  `json:"image"`
	Description        string  `json:"description"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discount_percentage"`
}
