package domain

// DeliveryFeeCents is charged once per non-empty cart.
const DeliveryFeeCents int64 = 1000

var (
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessAddToCart      = "item added to cart"
	MessageSuccessUpdateQuantity = "quantity updated"
	MessageSuccessClearItem      = "item removed from cart"
	MessageSuccessDeleteCart     = "cart cleared"

	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedUpdateQuantity = "failed to update quantity"
	MessageFailedClearItem      = "failed to remove item from cart"
	MessageFailedDeleteCart     = "failed to clear cart"
)

type (
	AddToCartRequest struct {
		ProductID string `json:"productId" validate:"required"`
	}

	UpdateQuantityRequest struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}

	CartTotals struct {
		Subtotal    float64 `json:"subtotal"`
		DeliveryFee float64 `json:"deliveryFee"`
		Total       float64 `json:"total"`
	}
)
