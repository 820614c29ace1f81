package models

import "time"

// NutritionFacts holds per-100g nutrition values printed on the pack.
type NutritionFacts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Product represents a SKU record in the store catalog.
type Product struct {
	ID              string         `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name            string         `json:"name" validate:"required,min=3,max=100"`
	Slug            string         `json:"slug" gorm:"uniqueIndex;type:varchar(120)" validate:"omitempty,max=120"`
	Description     string         `json:"description" validate:"omitempty,max=500"`
	LongDescription string         `json:"longDescription" validate:"omitempty,max=2000"`
	Price           float64        `json:"price" validate:"required,gt=0"`
	OriginalPrice   float64        `json:"originalPrice,omitempty" validate:"omitempty,gtefield=Price"`
	Discount        int            `json:"discount,omitempty" validate:"gte=0,lte=100"`
	Images          []string       `json:"images" gorm:"serializer:json"`
	Category        string         `json:"category" gorm:"index;type:varchar(100)" validate:"required"`
	SubCategory     string         `json:"subCategory,omitempty" gorm:"type:varchar(100)"`
	Weight          string         `json:"weight"`
	Ingredients     []string       `json:"ingredients" gorm:"serializer:json"`
	NutritionFacts  NutritionFacts `json:"nutritionFacts" gorm:"embedded;embeddedPrefix:nutrition_"`
	Tags            []string       `json:"tags" gorm:"serializer:json"`
	InStock         bool           `json:"inStock"`
	Rating          float64        `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount     int            `json:"reviewCount" validate:"gte=0"`
	Features        []string       `json:"features" gorm:"serializer:json"`
	ShelfLife       string         `json:"shelfLife"`
	Certifications  []string       `json:"certifications" gorm:"serializer:json"`
	BestSeller      bool           `json:"bestSeller,omitempty"`
	NewArrival      bool           `json:"newArrival,omitempty"`
	Featured        bool           `json:"featured,omitempty"`
	CreatedAt       time.Time      `json:"-"`
	UpdatedAt       time.Time      `json:"-"`
}

// HasTag reports whether the product carries the exact tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
