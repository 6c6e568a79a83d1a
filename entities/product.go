package entities

type Product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Status      string  `json:"status,omitempty"`
	Seller      string  `json:"seller,omitempty"`
}
