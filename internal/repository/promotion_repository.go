package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sabkat-ahmed-rafi/MediMarketHub-Backend/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type promotionRepository struct {
	advertisements *mongo.Collection
	slider         *mongo.Collection
}

func NewPromotionRepository(db *mongo.Database) PromotionRepository {
	return &promotionRepository{
		advertisements: db.Collection("advertisements"),
		slider:         db.Collection("slider"),
	}
}

func (p *promotionRepository) CreateAdvertisement(ctx context.Context, ad *domain.Advertisement) error {
	ad.CreatedAt = time.Now()
	if ad.Flag == "" {
		ad.Flag = domain.NotAdvertised
	}

	_, err := p.advertisements.InsertOne(ctx, ad)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateAd
		}
		return fmt.Errorf("failed to create advertisement: %w", err)
	}
	return nil
}

func (p *promotionRepository) ListAdvertisements(ctx context.Context) ([]domain.Advertisement, error) {
	return p.findAds(ctx, bson.M{})
}

func (p *promotionRepository) ListAdvertisementsBySeller(ctx context.Context, sellerEmail string) ([]domain.Advertisement, error) {
	return p.findAds(ctx, bson.M{"seller_email": sellerEmail})
}

func (p *promotionRepository) findAds(ctx context.Context, filter bson.M) ([]domain.Advertisement, error) {
	cursor, err := p.advertisements.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list advertisements: %w", err)
	}
	defer cursor.Close(ctx)

	var ads []domain.Advertisement
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode advertisements: %w", err)
	}
	return ads, nil
}

func (p *promotionRepository) SetAdvertisementFlag(ctx context.Context, itemName string, flag domain.PromotionFlag) error {
	filter := bson.M{"item_name": itemName}
	update := bson.M{"$set": bson.M{"promotion_flag": flag}}

	result, err := p.advertisements.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set advertisement flag: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrAdvertisementNotFound
	}
	return nil
}

func (p *promotionRepository) GetSliderItem(ctx context.Context, itemName string) (*domain.SliderItem, error) {
	var item domain.SliderItem

	filter := bson.M{"item_name": itemName}
	err := p.slider.FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSliderItemNotFound
		}
		return nil, fmt.Errorf("failed to get slider item: %w", err)
	}

	return &item, nil
}

func (p *promotionRepository) ListSlider(ctx context.Context) ([]domain.SliderItem, error) {
	cursor, err := p.slider.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list slider items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []domain.SliderItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode slider items: %w", err)
	}
	return items, nil
}

func (p *promotionRepository) InsertSliderItem(ctx context.Context, s *domain.SliderItem) error {
	s.CreatedAt = time.Now()

	_, err := p.slider.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Already displayed; treat a concurrent double-promote as a conflict.
			return ErrDuplicateAd
		}
		return fmt.Errorf("failed to insert slider item: %w", err)
	}
	return nil
}

func (p *promotionRepository) DeleteSliderItem(ctx context.Context, itemName string) (int64, error) {
	result, err := p.slider.DeleteOne(ctx, bson.M{"item_name": itemName})
	if err != nil {
		return 0, fmt.Errorf("failed to delete slider item: %w", err)
	}
	return result.DeletedCount, nil
}

func (p *promotionRepository) CreateIndexes(ctx context.Context) error {
	unique := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "item_name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := p.advertisements.Indexes().CreateMany(ctx, unique); err != nil {
		return fmt.Errorf("failed to create advertisement indexes: %w", err)
	}
	if _, err := p.slider.Indexes().CreateMany(ctx, unique); err != nil {
		return fmt.Errorf("failed to create slider indexes: %w", err)
	}
	return nil
}
