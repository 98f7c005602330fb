package model

// Category is the single spending/income bucket assigned to a transaction.
type Category string

// Spending and income categories.
const (
	CategoryFood          Category = "Food"
	CategoryTravel        Category = "Travel"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryRent          Category = "Rent"
	CategorySalary        Category = "Salary"
	CategoryInvestment    Category = "Investment"
	CategoryTransfer      Category = "Transfer"
	CategoryOther         Category = "Other"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBills,
		CategoryHealth,
		CategoryEducation,
		CategoryRent,
		CategorySalary,
		CategoryInvestment,
		CategoryTransfer,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}
