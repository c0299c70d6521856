package domain

// DefaultCategory is returned when neither the prompt nor the model guess
// matches the taxonomy.
const DefaultCategory = "General"

type TaxonomyCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Taxonomy is an ordered, read-only list of categories. Resolution walks it
// in declaration order, so the order is part of its meaning.
type Taxonomy struct {
	categories []TaxonomyCategory
}

// NewTaxonomy copies the given categories so later changes to the argument
// cannot leak into the taxonomy.
func NewTaxonomy(categories []TaxonomyCategory) *Taxonomy {
	cp := make([]TaxonomyCategory, len(categories))
	for i, c := range categories {
		kws := make([]string, len(c.Keywords))
		copy(kws, c.Keywords)
		cp[i] = TaxonomyCategory{Name: c.Name, Keywords: kws}
	}
	return &Taxonomy{categories: cp}
}

func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// Category returns a copy of the i-th category.
func (t *Taxonomy) Category(i int) TaxonomyCategory {
	c := t.categories[i]
	kws := make([]string, len(c.Keywords))
	copy(kws, c.Keywords)
	return TaxonomyCategory{Name: c.Name, Keywords: kws}
}

// Each calls fn for every category in order until fn returns false.
// fn must not retain or modify the keyword slice.
func (t *Taxonomy) Each(fn func(c TaxonomyCategory) bool) {
	for _, c := range t.categories {
		if !fn(c) {
			return
		}
	}
}

func (t *Taxonomy) Names() []string {
	names := make([]string, 0, len(t.categories))
	for _, c := range t.categories {
		names = append(names, c.Name)
	}
	return names
}

// Contains reports whether name is a declared category or the default.
func (t *Taxonomy) Contains(name string) bool {
	if name == DefaultCategory {
		return true
	}
	for _, c := range t.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy([]TaxonomyCategory{
		{
			Name: "Electronics",
			Keywords: []string{
				"Smartphone", "Phone", "Mobile",
				"TV", "Television", "LED", "OLED",
				"Laptop", "Computer", "PC",
				"Tablet", "iPad",
				"Headphones", "Earbuds", "Speakers",
				"Refrigerator", "Fridge",
				"Washing Machine",
				"Camera", "DSLR",
				"Smartwatch", "Wearable",
			},
		},
		{
			Name: "Household",
			Keywords: []string{
				"Bedsheet", "Mattress", "Pillow",
				"Kitchenware", "Cookware", "Utensils",
				"Furniture", "Sofa", "Table",
			},
		},
		{
			Name: "Personal Care",
			Keywords: []string{
				"Perfume", "Deodorant",
				"Soap", "Shampoo",
				"Skincare", "Makeup",
			},
		},
		{
			Name: "Entertainment",
			Keywords: []string{
				"Streaming", "OTT", "Movies",
				"Music", "Game", "Gaming", "Console",
			},
		},
		{
			Name: "Education",
			Keywords: []string{
				"Training", "Course",
				"Learning", "E-learning",
				"Books", "Study", "Podcast",
			},
		},
	})
}

type ResolutionStrategy string

const (
	StrategyDirectMatch ResolutionStrategy = "direct_match"
	StrategyModelMatch  ResolutionStrategy = "model_match"
	StrategyFallback    ResolutionStrategy = "fallback"
)

type CategoryResolution struct {
	Category       string             `json:"category"`
	Strategy       ResolutionStrategy `json:"strategy"`
	MatchedKeyword string             `json:"matched_keyword,omitempty"`
	ModelGuess     string             `json:"model_guess,omitempty"`
	ModelError     string             `json:"model_error,omitempty"`
}
