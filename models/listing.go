package models

// Listing is a single rental property record. Numeric fields use the flexible
// scalar types because listing feeds occasionally deliver numbers as strings.
type Listing struct {
	ID        string    `bson:"id" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Type      string    `bson:"type" json:"type"` // Apartment, House or Villa
	Country   string    `bson:"country" json:"country"`
	City      string    `bson:"city,omitempty" json:"city,omitempty"`
	Address   string    `bson:"address,omitempty" json:"address,omitempty"`
	Bedrooms  FlexInt   `bson:"bedrooms" json:"bedrooms"`
	Bathrooms FlexInt   `bson:"bathrooms" json:"bathrooms"`
	Price     FlexFloat `bson:"price" json:"price"`
	Surface   FlexFloat `bson:"surface" json:"surface"`
	ImageURL  string    `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
}

// ScoredListing pairs a listing with its computed match score and the
// human-readable reasons the score was awarded, in rule order.
type ScoredListing struct {
	Listing Listing  `bson:"listing" json:"listing"`
	Score   int      `bson:"score" json:"score"`
	Reasons []string `bson:"reasons" json:"reasons"`
}
