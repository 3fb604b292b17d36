package catalog

// Product is a storefront catalog item as the backend publishes it.
// The chat service only reads products; the storefront backend owns mutation.
// JSON tags mirror the storefront API so product cards render unchanged in
// the shop widget.
type Product struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	Price       int64    `json:"price"`
	Bestseller  bool     `json:"bestseller"`
	Images      []string `json:"image"`
}
