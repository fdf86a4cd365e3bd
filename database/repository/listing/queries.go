package listingRepo

import (
	"context"
	"fmt"
	"time"

	"homematch/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Search performs a filtered listing search. Price filters are applied
// in-process because listing feeds occasionally store prices as strings,
// which a bson range query would silently skip.
func (r *MongoListingRepo) Search(criteria ListingSearchCriteria) ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if criteria.Type != "" {
		filter["type"] = criteria.Type
	}
	if criteria.Country != "" {
		filter["country"] = criteria.Country
	}

	opts := options.Find()
	if criteria.Limit > 0 {
		opts.SetLimit(criteria.Limit)
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("listing search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	for cursor.Next(ctx) {
		var l models.Listing
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		if criteria.MinPrice > 0 && (!l.Price.Valid || l.Price.Value < criteria.MinPrice) {
			continue
		}
		if criteria.MaxPrice > 0 && (!l.Price.Valid || l.Price.Value > criteria.MaxPrice) {
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}
