package listing

import (
	"strings"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"
)

var (
	ErrInvalidServiceType = errs.New("invalid service type")
	ErrEmptyListingID     = errs.New("listing id is required")
	ErrEmptyTitle         = errs.New("listing title is required")
	ErrInvalidCapacity    = errs.New("listing capacity must be at least 1")
	ErrDuplicateListingID = errs.New("duplicate listing id")
)

// Listing is a sellable unit of vendor inventory.
type Listing struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Type     ServiceType `json:"type"`
	Capacity int         `json:"capacity"`
}

func NewListing(id, title string, t ServiceType, capacity int) (*Listing, error) {
	id = strings.TrimSpace(id)
	title = strings.TrimSpace(title)
	if id == "" {
		return nil, ErrEmptyListingID
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !t.IsValid() {
		return nil, ErrInvalidServiceType
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Listing{ID: id, Title: title, Type: t, Capacity: capacity}, nil
}

// ValidateCatalog rejects a catalog with duplicate ids.
func ValidateCatalog(ls []Listing) error {
	seen := make(map[string]struct{}, len(ls))
	for _, l := range ls {
		if _, ok := seen[l.ID]; ok {
			return errs.Wrap(ErrDuplicateListingID, l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	return nil
}

// DemoCatalog is what a fresh vendor account is seeded with.
func DemoCatalog() []Listing {
	return []Listing{
		{ID: "stay-001", Title: "Oceanview Loft in Lisbon", Type: TypeStays, Capacity: 4},
		{ID: "stay-002", Title: "Alpine Chalet near Zermatt", Type: TypeStays, Capacity: 8},
		{ID: "flight-001", Title: "LIS to JFK Direct", Type: TypeFlights, Capacity: 180},
		{ID: "exp-001", Title: "Sunset Sailing on the Tagus", Type: TypeExperiences, Capacity: 12},
		{ID: "event-001", Title: "Fado Night at Alfama", Type: TypeEvents, Capacity: 60},
		{ID: "ess-001", Title: "Airport Transfer and eSIM Bundle", Type: TypeEssentials, Capacity: 50},
	}
}
