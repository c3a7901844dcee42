package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

// LeadRepository persists contact-form leads.
type LeadRepository struct {
	coll *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{coll: db.Collection(collLeads)}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}

	stored := *lead
	stored.ID = res.InsertedID.(primitive.ObjectID)
	return &stored, nil
}

// List returns leads newest first, optionally filtered by status.
func (r *LeadRepository) List(ctx context.Context, status domain.LeadStatus, limit int64) ([]domain.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer cur.Close(ctx)

	leads := []domain.Lead{}
	if err := cur.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}
	return leads, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*domain.Lead, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var lead domain.Lead
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&lead); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return &lead, nil
}

// Update applies the set fields of patch plus a fresh updated_at.
func (r *LeadRepository) Update(ctx context.Context, id string, patch domain.LeadPatch) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	changes := patch.Changes()
	if len(changes) == 0 {
		return domain.ErrEmptyUpdate
	}
	changes["updated_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(changes)})
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if res.ModifiedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count counts leads with the given status; empty status counts all.
func (r *LeadRepository) Count(ctx context.Context, status domain.LeadStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}
