package listing

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Category classifies a listing. The set is closed; free-form categories are
// not accepted.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryDesign covers graphic and visual design services.
	CategoryDesign

	// CategoryDevelopment covers software development services.
	CategoryDevelopment

	// CategoryWriting covers copywriting and translation services.
	CategoryWriting

	// CategoryMarketing covers promotion and advertising services.
	CategoryMarketing

	// CategoryVideo covers video production and editing services.
	CategoryVideo

	// CategoryBusiness covers consulting and administrative services.
	CategoryBusiness
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:     "Unknown",
		CategoryDesign:      "Design",
		CategoryDevelopment: "Development",
		CategoryWriting:     "Writing",
		CategoryMarketing:   "Marketing",
		CategoryVideo:       "Video",
		CategoryBusiness:    "Business",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryDesign:      "Design",
		CategoryDevelopment: "Development",
		CategoryWriting:     "Writing",
		CategoryMarketing:   "Marketing",
		CategoryVideo:       "Video",
		CategoryBusiness:    "Business",
	}
}

// CategoryFromString parses a category from its string representation.
func CategoryFromString(s string) (Category, error) {
	for category, name := range getValidCategoryStrings() {
		if name == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause("category",
		fmt.Errorf("%q is not a valid category", s))
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
