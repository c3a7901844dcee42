package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/komfort-city/site-backend/internal/core/domain"
	"github.com/komfort-city/site-backend/internal/core/ports"
)

// SiteRepository manages the singleton site information document. All
// operations address the one document via an empty filter.
type SiteRepository struct {
	coll *mongo.Collection
}

func NewSiteRepository(db *mongo.Database) *SiteRepository {
	return &SiteRepository{coll: db.Collection(collSiteInfo)}
}

func (r *SiteRepository) Get(ctx context.Context) (*domain.SiteInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var info domain.SiteInfo
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&info); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find site info: %w", err)
	}
	return &info, nil
}

func (r *SiteRepository) Update(ctx context.Context, patch ports.Patch) error {
	changes := patch.Changes()
	if len(changes) == 0 {
		return domain.ErrEmptyUpdate
	}
	changes["updated_at"] = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{}, bson.M{"$set": bson.M(changes)})
	if err != nil {
		return fmt.Errorf("update site info: %w", err)
	}
	if res.ModifiedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
