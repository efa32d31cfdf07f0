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

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{
		collection: db.Collection("payments"),
	}
}

func (p *paymentRepository) Insert(ctx context.Context, payment *domain.Payment) error {
	payment.CreatedAt = time.Now()

	_, err := p.collection.InsertOne(ctx, payment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePayment
		}
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (p *paymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*domain.Payment, error) {
	var payment domain.Payment

	filter := bson.M{"transaction_id": transactionID}
	err := p.collection.FindOne(ctx, filter).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

func (p *paymentRepository) ListByBuyer(ctx context.Context, buyerEmail string) ([]domain.Payment, error) {
	return p.find(ctx, bson.M{"buyer_email": buyerEmail})
}

func (p *paymentRepository) ListBySeller(ctx context.Context, sellerEmail string) ([]domain.Payment, error) {
	return p.find(ctx, bson.M{"seller_email": sellerEmail})
}

func (p *paymentRepository) find(ctx context.Context, filter bson.M) ([]domain.Payment, error) {
	cursor, err := p.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var payments []domain.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// UpdateStatus rewrites the status field only. The transaction id and the
// rest of the record stay immutable.
func (p *paymentRepository) UpdateStatus(ctx context.Context, transactionID string, status domain.PaymentStatus) error {
	filter := bson.M{"transaction_id": transactionID}
	update := bson.M{"$set": bson.M{"status": status}}

	result, err := p.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

func (p *paymentRepository) SummarizeSeller(ctx context.Context, sellerEmail string) (*domain.SalesSummary, error) {
	return p.summarize(ctx, bson.M{"seller_email": sellerEmail})
}

func (p *paymentRepository) SummarizeAll(ctx context.Context) (*domain.SalesSummary, error) {
	return p.summarize(ctx, bson.M{})
}

// summarize computes the three ledger sums in one $group pass. A filter
// that matches nothing yields no group at all, which must read as zeros.
func (p *paymentRepository) summarize(ctx context.Context, match bson.M) (*domain.SalesSummary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"total_amount": bson.M{"$sum": "$amount"},
			"paid_amount": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", domain.StatusPaid}}, "$amount", 0,
			}}},
			"pending_amount": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", domain.StatusPending}}, "$amount", 0,
			}}},
		}}},
	}

	cursor, err := p.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize payments: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalAmount   float64 `bson:"total_amount"`
		PaidAmount    float64 `bson:"paid_amount"`
		PendingAmount float64 `bson:"pending_amount"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode payment summary: %w", err)
	}

	if len(results) == 0 {
		return &domain.SalesSummary{}, nil
	}
	return &domain.SalesSummary{
		TotalAmount:   results[0].TotalAmount,
		PaidAmount:    results[0].PaidAmount,
		PendingAmount: results[0].PendingAmount,
	}, nil
}

func (p *paymentRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "transaction_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "seller_email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "buyer_email", Value: 1}},
		},
	}

	_, err := p.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	return nil
}
