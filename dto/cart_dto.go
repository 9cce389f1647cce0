package dto

// CartLine is one cart row joined with its product, as returned by GET /cart.
type CartLine struct {
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	ProductID uint   `json:"product_id"`
}
