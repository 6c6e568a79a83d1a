package entities

type PendingSeller struct {
	ID          string `json:"_id"`
	Username    string `json:"username"`
	StoreName   string `json:"storeName"`
	SellerPhone string `json:"sellerPhone"`
	IDNumber    string `json:"idNumber"`
	Status      string `json:"status,omitempty"`
}

type DeliveryPersonnel struct {
	ID            string `json:"_id"`
	Username      string `json:"username"`
	DeliveryPhone string `json:"deliveryPhone"`
	Status        string `json:"status,omitempty"`
}
