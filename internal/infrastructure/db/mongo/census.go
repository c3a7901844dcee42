package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// contentCollections are the collections summed by CountAllContent.
var contentCollections = []string{
	collServices, collSectors, collAdvantages, collSolutions, collProjects, collFAQ,
}

// Census implements ports.ContentCensus with one count query per
// collection. The counts are independent reads, not a snapshot.
type Census struct {
	db *mongo.Database
}

func NewCensus(db *mongo.Database) *Census {
	return &Census{db: db}
}

func (c *Census) CountContent(ctx context.Context, collection string, activeOnly bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	n, err := c.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

func (c *Census) CountAllContent(ctx context.Context) (int64, error) {
	var total int64
	for _, coll := range contentCollections {
		n, err := c.CountContent(ctx, coll, false)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}
