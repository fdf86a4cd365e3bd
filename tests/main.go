package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"homematch/config"
	"homematch/database"
	"homematch/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the listings collection with a demo corpus. A slice of the documents
// deliberately carries numeric values as strings, the way some listing feeds
// deliver them, so the flexible decoding path gets exercised end to end.
func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database(config.AppConfig.DatabaseName)
	listingColl := db.Collection("listings")

	// Clear existing listings.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := listingColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear listings collection: %v", err)
	}

	types := []string{"Apartment", "House", "Villa"}
	countries := []string{"Canada", "United States", "Vietnam"}
	cities := map[string][]string{
		"Canada":        {"Toronto", "Vancouver", "Montreal"},
		"United States": {"New York", "Austin", "Seattle"},
		"Vietnam":       {"Hà Nội", "Đà Nẵng", "Hồ Chí Minh"},
	}
	perCombination := 4

	var docs []interface{}
	seq := 0
	for _, typ := range types {
		for _, country := range countries {
			for i := 0; i < perCombination; i++ {
				seq++
				bedrooms := 1 + rand.Intn(4)
				bathrooms := 1 + rand.Intn(3)
				price := float64(20000 + rand.Intn(180000))
				surface := float64(40 + rand.Intn(360))
				city := cities[country][rand.Intn(len(cities[country]))]

				doc := bson.M{
					"id":      fmt.Sprintf("listing-%03d", seq),
					"title":   fmt.Sprintf("%s in %s #%d", typ, city, i+1),
					"type":    typ,
					"country": country,
					"city":    city,
				}

				// Every third document stores its numbers as strings.
				if seq%3 == 0 {
					doc["bedrooms"] = fmt.Sprintf("%d", bedrooms)
					doc["bathrooms"] = fmt.Sprintf("%d", bathrooms)
					doc["price"] = fmt.Sprintf("%.0f", price)
					doc["surface"] = fmt.Sprintf("%.0f", surface)
				} else {
					doc["bedrooms"] = bedrooms
					doc["bathrooms"] = bathrooms
					doc["price"] = price
					doc["surface"] = surface
				}

				docs = append(docs, doc)
			}
		}
	}

	// One deliberately malformed document: the ranker must skip its numeric
	// rules without crashing.
	docs = append(docs, bson.M{
		"id":      "listing-bad",
		"title":   "Apartment with broken feed data",
		"type":    "Apartment",
		"country": "Canada",
		"price":   "not-a-number",
		"surface": "n/a",
	})

	res, err := listingColl.InsertMany(ctx, docs)
	if err != nil {
		log.Fatalf("Failed to insert listings: %v", err)
	}
	log.Printf("Seeded %d listings", len(res.InsertedIDs))

	// Round-trip a couple of documents to confirm flexible decoding.
	var sample models.Listing
	if err := listingColl.FindOne(ctx, bson.M{"id": "listing-003"}).Decode(&sample); err != nil {
		log.Fatalf("Failed to read back seeded listing: %v", err)
	}
	log.Printf("Read back %s: price=%v (valid=%v)", sample.ID, sample.Price.Value, sample.Price.Valid)
}
