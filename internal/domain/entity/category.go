// Package entity defines the core business entities for the domain layer.
package entity

// Category represents an expense category. The set is closed: every expense
// belongs to exactly one of the categories below.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryBills         Category = "Bills"
	CategoryTravel        Category = "Travel"
	CategoryGifts         Category = "Gifts"
	CategoryOther         Category = "Other"
)

// AllCategories lists every valid category, in display order.
var AllCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryEducation,
	CategoryBills,
	CategoryTravel,
	CategoryGifts,
	CategoryOther,
}

// IsValid reports whether the category is a member of the closed set.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}
