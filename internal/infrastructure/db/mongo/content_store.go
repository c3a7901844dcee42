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
	"github.com/komfort-city/site-backend/internal/core/ports"
)

// CollectionSpec is the declarative per-type policy applied by the
// generic content store: which collection backs the type and which way
// created_at breaks order ties in lists.
type CollectionSpec struct {
	Name        string
	CreatedSort int // 1 ascending, -1 descending
}

// The six content collections. Projects sort newest first within an
// order tier so fresh reference installations surface on the site.
var (
	Services   = CollectionSpec{Name: collServices, CreatedSort: 1}
	Sectors    = CollectionSpec{Name: collSectors, CreatedSort: 1}
	Advantages = CollectionSpec{Name: collAdvantages, CreatedSort: 1}
	Solutions  = CollectionSpec{Name: collSolutions, CreatedSort: 1}
	Projects   = CollectionSpec{Name: collProjects, CreatedSort: -1}
	FAQs       = CollectionSpec{Name: collFAQ, CreatedSort: 1}
)

// ContentStore is the single repository implementation behind all six
// content types. It satisfies ports.ContentRepository[T].
type ContentStore[T any] struct {
	coll *mongo.Collection
	spec CollectionSpec
}

func NewContentStore[T any](db *mongo.Database, spec CollectionSpec) *ContentStore[T] {
	return &ContentStore[T]{coll: db.Collection(spec.Name), spec: spec}
}

// Spec returns the policy this store was built from.
func (s *ContentStore[T]) Spec() CollectionSpec {
	return s.spec
}

// ListSort is the mongo sort document used for lists: order ascending,
// then created_at per the collection policy.
func (spec CollectionSpec) ListSort() bson.D {
	return bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: spec.CreatedSort}}
}

func (s *ContentStore[T]) List(ctx context.Context, onlyActive bool) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if onlyActive {
		filter["active"] = true
	}

	cur, err := s.coll.Find(ctx, filter, options.Find().SetSort(s.spec.ListSort()))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.spec.Name, err)
	}
	defer cur.Close(ctx)

	records := []T{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.spec.Name, err)
	}
	return records, nil
}

func (s *ContentStore[T]) GetByID(ctx context.Context, id string) (*T, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var record T
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", s.spec.Name, err)
	}
	return &record, nil
}

// Create inserts record with server-stamped created_at and updated_at and
// returns the stored document, identifier assigned.
func (s *ContentStore[T]) Create(ctx context.Context, record T) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", s.spec.Name, err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", s.spec.Name, err)
	}

	now := time.Now().UTC()
	delete(doc, "_id")
	doc["created_at"] = now
	doc["updated_at"] = now

	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert %s: %w", s.spec.Name, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert %s: unexpected id type %T", s.spec.Name, res.InsertedID)
	}
	return s.GetByID(ctx, oid.Hex())
}

// Update applies the set fields of patch plus a fresh updated_at. Zero
// modified documents surfaces as domain.ErrNotFound; an absent id and a
// no-op update are indistinguishable here.
func (s *ContentStore[T]) Update(ctx context.Context, id string, patch ports.Patch) error {
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

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(changes)})
	if err != nil {
		return fmt.Errorf("update %s: %w", s.spec.Name, err)
	}
	if res.ModifiedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the record unconditionally; content has no dependents.
func (s *ContentStore[T]) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s: %w", s.spec.Name, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
