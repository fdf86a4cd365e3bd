package listingRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"homematch/config"
	"homematch/database"
	"homematch/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoListingRepo implements ListingRepository using MongoDB.
type MongoListingRepo struct {
	coll *mongo.Collection
}

// NewMongoListingRepo creates a new instance of ListingRepository using MongoDB.
func NewMongoListingRepo() ListingRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("listings")
	repo := &MongoListingRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		// Index creation failing is not fatal; queries still work, slower.
		log.Printf("listing repo: failed to ensure indexes: %v", err)
	}
	return repo
}

func (r *MongoListingRepo) GetByID(id string) (*models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var listing models.Listing
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to fetch listing with id %s: %w", id, err)
	}
	return &listing, nil
}

func (r *MongoListingRepo) GetAll() ([]models.Listing, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve listings: %w", err)
	}
	defer cursor.Close(ctx)
	var listings []models.Listing
	for cursor.Next(ctx) {
		var l models.Listing
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *MongoListingRepo) Create(listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, listing); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

func (r *MongoListingRepo) Update(listing *models.Listing) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": listing.ID}
	result, err := r.coll.ReplaceOne(ctx, filter, listing)
	if err != nil {
		return fmt.Errorf("failed to update listing %s: %w", listing.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("listing %s not found", listing.ID)
	}
	return nil
}

func (r *MongoListingRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("listing %s not found", id)
	}
	return nil
}
