// Package catalog holds the product listing shown to customers and the
// filtering applied by the products screen.
package catalog

import (
	"fmt"
	"strings"
)

// CategoryAll matches every product.
const CategoryAll = "all"

const minSearchWord = 3

// Category is a product grouping.
type Category struct {
	ID   string
	Name string
}

// Product is a recommendable item. Price is in cents.
type Product struct {
	ID       string
	Title    string
	Price    int64
	URL      string
	ImageURL string
	Category string
}

// DisplayPrice formats Price as dollars, e.g. $249.99.
func (p Product) DisplayPrice() string {
	return fmt.Sprintf("$%d.%02d", p.Price/100, p.Price%100)
}

// Catalog is an immutable product list.
type Catalog struct {
	products   []Product
	categories []Category
}

// New builds a catalog over products and categories.
func New(products []Product, categories []Category) *Catalog {
	return &Catalog{
		products:   append([]Product(nil), products...),
		categories: append([]Category(nil), categories...),
	}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultProducts, defaultCategories)
}

// Categories lists the categories in display order.
func (c *Catalog) Categories() []Category {
	return append([]Category(nil), c.categories...)
}

// Products lists every product.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Filter returns products in category (CategoryAll or empty for any) whose
// title contains query, case-insensitively. Order is preserved.
func (c *Catalog) Filter(category, query string) []Product {
	category = strings.ToLower(strings.TrimSpace(category))
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && category != CategoryAll && p.Category != category {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Search matches any word of query against titles and categories, for
// free-text recommendation requests. Words shorter than three letters are ignored.
func (c *Catalog) Search(query string) []Product {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		if len(w) >= minSearchWord {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return nil
	}
	var out []Product
	for _, p := range c.products {
		title := strings.ToLower(p.Title)
		for _, w := range words {
			if strings.Contains(title, w) || p.Category == w {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

var defaultCategories = []Category{
	{ID: CategoryAll, Name: "All Products"},
	{ID: "electronics", Name: "Electronics"},
	{ID: "wearables", Name: "Wearables"},
	{ID: "accessories", Name: "Accessories"},
}

var defaultProducts = []Product{
	{ID: "1", Title: "Wireless Noise Cancelling Headphones", Price: 24999, URL: "https://example.com/product1", ImageURL: "https://via.placeholder.com/150", Category: "electronics"},
	{ID: "2", Title: "Fitness Smartwatch with Heart Rate Monitor", Price: 19999, URL: "https://example.com/product2", ImageURL: "https://via.placeholder.com/150", Category: "wearables"},
	{ID: "3", Title: "Ultra Slim Laptop Stand", Price: 3999, URL: "https://example.com/product3", ImageURL: "https://via.placeholder.com/150", Category: "accessories"},
	{ID: "4", Title: "Portable Bluetooth Speaker", Price: 7999, URL: "https://example.com/product4", ImageURL: "https://via.placeholder.com/150", Category: "electronics"},
	{ID: "5", Title: "Ergonomic Mechanical Keyboard", Price: 12999, URL: "https://example.com/product5", ImageURL: "https://via.placeholder.com/150", Category: "accessories"},
	{ID: "6", Title: "Fast Charging Power Bank 20000mAh", Price: 4999, URL: "https://example.com/product6", ImageURL: "https://via.placeholder.com/150", Category: "accessories"},
}
