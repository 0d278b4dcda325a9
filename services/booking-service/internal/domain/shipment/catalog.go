package shipment

import "fmt"

// Type identifies a shipment category. It is chosen once when a booking
// starts and never changes afterwards.
type Type string

const (
	Package   Type = "package"
	Pallet    Type = "pallet"
	Dangerous Type = "dangerous"
	Fresh     Type = "fresh"
	Container Type = "container"
)

// Option is one entry of the type selector.
type Option struct {
	ID          Type   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var catalog = []Option{
	{ID: Package, Title: "Colis", Description: "Envoyez des colis de toutes tailles"},
	{ID: Pallet, Title: "Palettes", Description: "Transport de palettes standards"},
	{ID: Dangerous, Title: "Produits Dangereux", Description: "Transport sécurisé de matières dangereuses"},
	{ID: Fresh, Title: "Produits Frais", Description: "Livraison réfrigérée pour produits périssables"},
	{ID: Container, Title: "Conteneurs", Description: "Transport de conteneurs standards"},
}

// Catalog returns the selectable shipment types in display order.
func Catalog() []Option {
	out := make([]Option, len(catalog))
	copy(out, catalog)
	return out
}

// ParseType validates s against the catalog.
func ParseType(s string) (Type, error) {
	for _, o := range catalog {
		if string(o.ID) == s {
			return o.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownShipmentType, s)
}

// Title returns the French display title, or the raw id for unknown types.
func (t Type) Title() string {
	for _, o := range catalog {
		if o.ID == t {
			return o.Title
		}
	}
	return string(t)
}
