// Package translations holds the static bilingual lookup tables for
// enumerated values. The maps are immutable after process start.
package translations

// Label is one bilingual display string.
type Label struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

var propertyTypes = map[string]Label{
	"apartment": {Ar: "شقة", En: "Apartment"},
	"villa":     {Ar: "فيلا", En: "Villa"},
	"duplex":    {Ar: "دوبلكس", En: "Duplex"},
	"office":    {Ar: "مكتب", En: "Office"},
	"land":      {Ar: "أرض", En: "Land"},
	"shop":      {Ar: "محل تجاري", En: "Shop"},
}

var propertyStatuses = map[string]Label{
	"available": {Ar: "متاح", En: "Available"},
	"sold":      {Ar: "مباع", En: "Sold"},
	"rented":    {Ar: "مؤجر", En: "Rented"},
}

var postStatuses = map[string]Label{
	"draft":     {Ar: "مسودة", En: "Draft"},
	"published": {Ar: "منشور", En: "Published"},
	"archived":  {Ar: "مؤرشف", En: "Archived"},
}

// PropertyType returns the bilingual label for a property type key.
func PropertyType(key string) (Label, bool) {
	label, ok := propertyTypes[key]
	return label, ok
}

// PropertyStatus returns the bilingual label for a listing status key.
func PropertyStatus(key string) (Label, bool) {
	label, ok := propertyStatuses[key]
	return label, ok
}

// PostStatus returns the bilingual label for a post status key.
func PostStatus(key string) (Label, bool) {
	label, ok := postStatuses[key]
	return label, ok
}
