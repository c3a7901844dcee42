package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/komfort-city/site-backend/internal/core/domain"
)

// MediaRepository persists upload metadata in the uploads collection.
// Filenames are system-generated and unique, so they serve as the key.
type MediaRepository struct {
	coll *mongo.Collection
}

func NewMediaRepository(db *mongo.Database) *MediaRepository {
	return &MediaRepository{coll: db.Collection(collUploads)}
}

func (r *MediaRepository) Insert(ctx context.Context, file *domain.MediaFile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, file); err != nil {
		return fmt.Errorf("insert upload: %w", err)
	}
	return nil
}

func (r *MediaRepository) FindByFilename(ctx context.Context, filename string) (*domain.MediaFile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var file domain.MediaFile
	if err := r.coll.FindOne(ctx, bson.M{"filename": filename}).Decode(&file); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find upload: %w", err)
	}
	return &file, nil
}

// List returns uploads newest first.
func (r *MediaRepository) List(ctx context.Context, limit int64) ([]domain.MediaFile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}
	defer cur.Close(ctx)

	files := []domain.MediaFile{}
	if err := cur.All(ctx, &files); err != nil {
		return nil, fmt.Errorf("decode uploads: %w", err)
	}
	return files, nil
}

func (r *MediaRepository) Delete(ctx context.Context, filename string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"filename": filename})
	if err != nil {
		return fmt.Errorf("delete upload: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
