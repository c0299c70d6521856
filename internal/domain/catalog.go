package domain

import "sort"

// ProductCatalog maps lower-case product-name stems to the brand that owns them.
type ProductCatalog struct {
	brands map[string]string
}

func NewProductCatalog(products map[string]string) *ProductCatalog {
	cp := make(map[string]string, len(products))
	for k, v := range products {
		cp[k] = v
	}
	return &ProductCatalog{brands: cp}
}

func (c *ProductCatalog) Len() int {
	return len(c.brands)
}

// Brand returns the owning brand of a product stem.
func (c *ProductCatalog) Brand(product string) (string, bool) {
	b, ok := c.brands[product]
	return b, ok
}

// Products returns the product stems, longest first and then alphabetically,
// so that alternations built from them prefer the most specific stem.
func (c *ProductCatalog) Products() []string {
	out := make([]string, 0, len(c.brands))
	for k := range c.brands {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func DefaultProductCatalog() *ProductCatalog {
	return NewProductCatalog(map[string]string{
		"fold":    "Samsung",
		"galaxy":  "Samsung",
		"bravia":  "Sony",
		"xperia":  "Sony",
		"iphone":  "Apple",
		"ipad":    "Apple",
		"macbook": "Apple",
		"tiktok":  "ByteDance",
		"youtube": "Google",
	})
}
