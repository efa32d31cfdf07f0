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

type medicineRepository struct {
	collection *mongo.Collection
}

func NewMedicineRepository(db *mongo.Database) MedicineRepository {
	return &medicineRepository{
		collection: db.Collection("medicines"),
	}
}

func (m *medicineRepository) Create(ctx context.Context, med *domain.Medicine) error {
	now := time.Now()
	med.CreatedAt = now
	med.UpdatedAt = now
	if med.Flag == "" {
		med.Flag = domain.NotAdvertised
	}

	_, err := m.collection.InsertOne(ctx, med)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateMedicine
		}
		return fmt.Errorf("failed to insert medicine: %w", err)
	}
	return nil
}

func (m *medicineRepository) GetByName(ctx context.Context, name string) (*domain.Medicine, error) {
	var med domain.Medicine

	filter := bson.M{"name": name}
	err := m.collection.FindOne(ctx, filter).Decode(&med)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMedicineNotFound
		}
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}

	return &med, nil
}

func (m *medicineRepository) List(ctx context.Context) ([]domain.Medicine, error) {
	return m.find(ctx, bson.M{})
}

func (m *medicineRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Medicine, error) {
	return m.find(ctx, bson.M{"seller_email": sellerEmail})
}

func (m *medicineRepository) find(ctx context.Context, filter bson.M) ([]domain.Medicine, error) {
	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	defer cursor.Close(ctx)

	var meds []domain.Medicine
	if err := cursor.All(ctx, &meds); err != nil {
		return nil, fmt.Errorf("failed to decode medicines: %w", err)
	}
	return meds, nil
}

func (m *medicineRepository) Update(ctx context.Context, name, sellerEmail string, upd domain.MedicineUpdate) error {
	filter := bson.M{"name": name, "seller_email": sellerEmail}
	update := bson.M{
		"$set": bson.M{
			"company":             upd.Company,
			"image":               upd.Image,
			"description":         upd.Description,
			"price":               upd.Price,
			"discount_percentage": upd.DiscountPercentage,
			"updated_at":          time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update medicine: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrMedicineNotFound
	}
	return nil
}

func (m *medicineRepository) SetPromotionFlag(ctx context.Context, name string, flag domain.PromotionFlag) error {
	filter := bson.M{"name": name}
	update := bson.M{
		"$set": bson.M{
			"promotion_flag": flag,
			"updated_at":     time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set promotion flag: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrMedicineNotFound
	}
	return nil
}

func (m *medicineRepository) Delete(ctx context.Context, name, sellerEmail string) error {
	filter := bson.M{"name": name, "seller_email": sellerEmail}

	result, err := m.collection.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrMedicineNotFound
	}
	return nil
}

func (m *medicineRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "seller_email", Value: 1}},
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create medicine indexes: %w", err)
	}
	return nil
}
