package entities

// Product is the catalog item a shopper adds to the cart.
//
// The storefront does not own a product catalog; the product travels with the
// "add to cart" request and is stored as-is inside the cart line.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
}

// CartLine is one (product, quantity) pair of the cart.
//
// Invariants:
//   - Quantity >= 1
//   - at most one line per Product.ID
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// PurchasedProduct is the line shape sent to the purchase recorder.
type PurchasedProduct struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// PurchaseRecord is emitted once per completed checkout.
type PurchaseRecord struct {
	Total    float64            `json:"total"`
	Products []PurchasedProduct `json:"products"`
}
