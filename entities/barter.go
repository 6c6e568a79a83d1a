package entities

type BarterItem struct {
	ID                    string `json:"_id"`
	ItemName              string `json:"itemName"`
	Description           string `json:"description"`
	WantedItemDescription string `json:"wantedItemDescription"`
	Image                 string `json:"image"`
	Phone                 string `json:"phone"`
	Owner                 string `json:"owner"`
}
