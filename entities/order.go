package entities

type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Order struct {
	ID                string      `json:"_id"`
	Items             []OrderItem `json:"items"`
	Status            string      `json:"status"`
	PaymentStatus     string      `json:"paymentStatus"`
	DeliveryPersonnel string      `json:"deliveryPersonnel,omitempty"`
}
