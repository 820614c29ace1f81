package catalog

import "makhana/internal/models"

var seed = []models.Product{
	{
		ID:              "premium-roasted-makhana",
		Name:            "Premium Roasted Makhana",
		Slug:            "premium-roasted-makhana",
		Description:     "Crispy, naturally roasted makhana with no added oil or preservatives",
		LongDescription: "Carefully selected lotus seeds, slow roasted for an even crunch while keeping the natural nutrition intact.",
		Price:           299,
		OriginalPrice:   349,
		Discount:        14,
		Images:          []string{"/images/premium-makhana-pack.jpg", "/images/makhana-1.jpg", "/images/makhana-2.jpg"},
		Category:        "Makhana",
		SubCategory:     "Roasted",
		Weight:          "100g",
		Ingredients:     []string{"100% Natural Lotus Seeds (Makhana)", "Rock Salt"},
		NutritionFacts:  models.NutritionFacts{Calories: 347, Protein: 9.7, Carbs: 76.9, Fat: 0.1, Fiber: 14.5, Sodium: 1},
		Tags:            []string{"organic", "gluten-free", "vegan", "high-protein", "low-fat"},
		InStock:         true,
		Rating:          4.8,
		ReviewCount:     234,
		Features:        []string{"100% Natural", "No Oil Added", "High Protein", "Gluten Free", "Crunchy Texture"},
		ShelfLife:       "12 months",
		Certifications:  []string{"FSSAI", "Organic India", "ISO 22000"},
		BestSeller:      true,
		Featured:        true,
	},
	{
		ID:              "tangy-masala-makhana",
		Name:            "Tangy Masala Makhana",
		Slug:            "tangy-masala-makhana",
		Description:     "Perfectly spiced makhana with a tangy twist that tingles your taste buds",
		LongDescription: "A blend of traditional Indian spices tossed over premium makhana.",
		Price:           329,
		OriginalPrice:   389,
		Discount:        15,
		Images:          []string{"/images/tangy-makhana-pack.jpg", "/images/makhana-3.jpg", "/images/makhana-4.jpg"},
		Category:        "Makhana",
		SubCategory:     "Flavored",
		Weight:          "100g",
		Ingredients:     []string{"Lotus Seeds (Makhana)", "Spice Mix", "Black Salt", "Cumin", "Coriander", "Red Chili", "Natural Flavors"},
		NutritionFacts:  models.NutritionFacts{Calories: 352, Protein: 9.5, Carbs: 77.2, Fat: 0.3, Fiber: 14.2, Sodium: 2.1},
		Tags:            []string{"spicy", "tangy", "flavored", "gluten-free", "vegan"},
		InStock:         true,
		Rating:          4.7,
		ReviewCount:     189,
		Features:        []string{"Authentic Spices", "Tangy Flavor", "No Artificial Colors", "Traditional Recipe"},
		ShelfLife:       "12 months",
		Certifications:  []string{"FSSAI", "ISO 22000"},
		BestSeller:      true,
	},
	{
		ID:              "chocolate-coated-makhana",
		Name:            "Chocolate Coated Makhana",
		Slug:            "chocolate-coated-makhana",
		Description:     "Indulgent dark chocolate coating on premium makhana for guilt-free dessert",
		LongDescription: "Premium makhana covered in rich 70% dark chocolate.",
		Price:           399,
		OriginalPrice:   459,
		Discount:        13,
		Images:          []string{"/images/makhana-1.jpg", "/images/makhana-2.jpg"},
		Category:        "Makhana",
		SubCategory:     "Sweet",
		Weight:          "100g",
		Ingredients:     []string{"Lotus Seeds (Makhana)", "Dark Chocolate (70% Cocoa)", "Natural Vanilla", "Organic Sugar"},
		NutritionFacts:  models.NutritionFacts{Calories: 425, Protein: 8.9, Carbs: 68.5, Fat: 12.3, Fiber: 11.8, Sodium: 0.8},
		Tags:            []string{"chocolate", "sweet", "dessert", "antioxidants", "dark-chocolate"},
		InStock:         true,
		Rating:          4.9,
		ReviewCount:     156,
		Features:        []string{"70% Dark Chocolate", "Antioxidant Rich", "Natural Sweetener", "Premium Quality"},
		ShelfLife:       "10 months",
		Certifications:  []string{"FSSAI", "Organic India"},
		NewArrival:      true,
	},
	{
		ID:              "pudina-mint-makhana",
		Name:            "Pudina Mint Makhana",
		Slug:            "pudina-mint-makhana",
		Description:     "Refreshing mint-flavored makhana for a cool and crispy snacking experience",
		LongDescription: "Makhana seasoned with natural mint extract.",
		Price:           319,
		OriginalPrice:   369,
		Discount:        14,
		Images:          []string{"/images/makhana-3.jpg", "/images/makhana-4.jpg"},
		Category:        "Makhana",
		SubCategory:     "Flavored",
		Weight:          "100g",
		Ingredients:     []string{"Lotus Seeds (Makhana)", "Mint Extract", "Black Salt", "Cumin", "Natural Flavors"},
		NutritionFacts:  models.NutritionFacts{Calories: 349, Protein: 9.6, Carbs: 76.5, Fat: 0.2, Fiber: 14.3, Sodium: 1.8},
		Tags:            []string{"mint", "refreshing", "cooling", "natural", "aromatic"},
		InStock:         true,
		Rating:          4.6,
		ReviewCount:     127,
		Features:        []string{"Natural Mint", "Cooling Effect", "Digestive Properties", "Fresh Flavor"},
		ShelfLife:       "12 months",
		Certifications:  []string{"FSSAI", "ISO 22000"},
	},
	{
		ID:              "makhana-trail-mix",
		Name:            "Makhana Trail Mix",
		Slug:            "makhana-trail-mix",
		Description:     "Nutritious trail mix with makhana, nuts, and dried fruits for energy on-the-go",
		LongDescription: "Makhana with selected nuts and dried fruits.",
		Price:           449,
		OriginalPrice:   529,
		Discount:        15,
		Images:          []string{"/images/makhana-2.jpg", "/images/makhana-1.jpg"},
		Category:        "Trail Mix",
		Weight:          "150g",
		Ingredients:     []string{"Makhana", "Almonds", "Cashews", "Raisins", "Dried Cranberries", "Pumpkin Seeds"},
		NutritionFacts:  models.NutritionFacts{Calories: 485, Protein: 15.2, Carbs: 52.3, Fat: 24.8, Fiber: 8.7, Sodium: 2.5},
		Tags:            []string{"trail-mix", "energy", "nuts", "dried-fruits", "portable"},
		InStock:         true,
		Rating:          4.8,
		ReviewCount:     98,
		Features:        []string{"Energy Boost", "Mixed Nutrients", "Travel Friendly", "No Preservatives"},
		ShelfLife:       "8 months",
		Certifications:  []string{"FSSAI", "ISO 22000"},
	},
	{
		ID:              "cheese-herbs-makhana",
		Name:            "Cheese & Herbs Makhana",
		Slug:            "cheese-herbs-makhana",
		Description:     "Gourmet makhana with rich cheese flavor and aromatic herbs",
		LongDescription: "Natural cheese powder and a herb blend over roasted makhana.",
		Price:           369,
		OriginalPrice:   419,
		Discount:        12,
		Images:          []string{"/images/makhana-4.jpg", "/images/makhana-3.jpg"},
		Category:        "Makhana",
		SubCategory:     "Gourmet",
		Weight:          "100g",
		Ingredients:     []string{"Lotus Seeds (Makhana)", "Natural Cheese Powder", "Oregano", "Basil", "Thyme", "Garlic Powder"},
		NutritionFacts:  models.NutritionFacts{Calories: 365, Protein: 11.2, Carbs: 74.8, Fat: 2.1, Fiber: 13.9, Sodium: 3.2},
		Tags:            []string{"cheese", "herbs", "gourmet", "savory", "premium"},
		InStock:         true,
		Rating:          4.5,
		ReviewCount:     87,
		Features:        []string{"Natural Cheese", "Herb Blend", "Gourmet Taste", "Rich Flavor"},
		ShelfLife:       "10 months",
		Certifications:  []string{"FSSAI", "ISO 22000"},
		NewArrival:      true,
	},
	{
		ID:              "peri-peri-makhana",
		Name:            "Peri Peri Makhana",
		Slug:            "peri-peri-makhana",
		Description:     "Fiery peri peri flavored makhana for spice lovers",
		LongDescription: "Makhana infused with peri peri spices.",
		Price:           339,
		OriginalPrice:   389,
		Discount:        13,
		Images:          []string{"/images/makhana-1.jpg", "/images/makhana-4.jpg"},
		Category:        "Makhana",
		SubCategory:     "Spicy",
		Weight:          "100g",
		Ingredients:     []string{"Lotus Seeds (Makhana)", "Peri Peri Spice Mix", "Paprika", "Garlic", "Lemon Powder", "Natural Flavors"},
		NutritionFacts:  models.NutritionFacts{Calories: 354, Protein: 9.4, Carbs: 77.1, Fat: 0.4, Fiber: 14.1, Sodium: 2.8},
		Tags:            []string{"peri-peri", "spicy", "hot", "bold-flavor", "fiery"},
		InStock:         true,
		Rating:          4.7,
		ReviewCount:     142,
		Features:        []string{"Authentic Peri Peri", "Spicy Heat", "Bold Flavor", "No Artificial Heat"},
		ShelfLife:       "12 months",
		Certifications:  []string{"FSSAI", "ISO 22000"},
	},
	{
		ID:              "himalayan-salt-makhana",
		Name:            "Himalayan Salt Makhana",
		Slug:            "himalayan-salt-makhana",
		Description:     "Premium makhana with pure Himalayan pink salt for natural flavor",
		LongDescription: "Makhana finished with mineral-rich Himalayan pink salt.",
		Price:           309,
		OriginalPrice:   359,
		Discount:        14,
		Images:          []string{"/images/makhana-2.jpg", "/images/makhana-3.jpg"},
		Category:        "Makhana",
		SubCategory:     "Natural",
		Weight:          "100g",
		Ingredients:     []string{"100% Natural Lotus Seeds (Makhana)", "Himalayan Pink Salt"},
		NutritionFacts:  models.NutritionFacts{Calories: 348, Protein: 9.8, Carbs: 76.7, Fat: 0.1, Fiber: 14.6, Sodium: 1.2},
		Tags:            []string{"himalayan-salt", "natural", "mineral-rich", "pure", "simple"},
		InStock:         true,
		Rating:          4.8,
		ReviewCount:     203,
		Features:        []string{"Himalayan Pink Salt", "Mineral Rich", "Pure Taste", "Natural Flavor"},
		ShelfLife:       "12 months",
		Certifications:  []string{"FSSAI", "Organic India", "ISO 22000"},
		Featured:        true,
	},
}

// Products returns a copy of the built-in catalog.
func Products() []models.Product {
	out := make([]models.Product, len(seed))
	copy(out, seed)
	return out
}
