package listingRepo

import "homematch/models"

// ListingSearchCriteria defines criteria for a filtered listing search.
// Zero values mean "no constraint".
type ListingSearchCriteria struct {
	Type     string
	Country  string
	MinPrice float64
	MaxPrice float64
	Limit    int64
}

// ListingRepository defines methods for listing data access.
type ListingRepository interface {
	// GetByID retrieves a listing by its unique ID.
	GetByID(id string) (*models.Listing, error)
	// GetAll retrieves the full candidate listing set.
	GetAll() ([]models.Listing, error)
	// Search performs a filtered search based on the given criteria.
	Search(criteria ListingSearchCriteria) ([]models.Listing, error)
	// Create inserts a new listing record.
	Create(listing *models.Listing) error
	// Update replaces an existing listing record.
	Update(listing *models.Listing) error
	// Delete removes a listing record by its ID.
	Delete(id string) error
}
