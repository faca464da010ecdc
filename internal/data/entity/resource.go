package entity

type ResourceType string

const (
	ResourceTypeRoom    ResourceType = "room"
	ResourceTypeVehicle ResourceType = "vehicle"
	ResourceTypeParking ResourceType = "parking-space"
)

// Resource is a bookable item from the catalog. Immutable for this core,
// owned by the catalog collaborator.
type Resource struct {
	ID           string       `db:"id"`
	Name         string       `db:"name"`
	Type         ResourceType `db:"type"`
	Location     string       `db:"location"`
	PricePerHour float64      `db:"price_per_hour"`
	Description  string       `db:"description"`
}
