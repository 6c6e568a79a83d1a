package domain

import "errors"

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"

	PaymentStatusSuccess = "success"
	PaymentStatusFailed  = "failed"
)

var (
	MessageSuccessGetOrders       = "orders retrieved successfully"
	MessageSuccessConfirmDelivery = "Order marked as delivered!"
	MessagePaymentSuccess         = "Payment successful! Your order is being processed."
	MessagePaymentFailed          = "Payment failed. Please try again."
	MessagePaymentProcessing      = "Payment is processing. Feel free to check your orders."

	MessageFailedGetOrders       = "failed to retrieve orders"
	MessageFailedPlaceOrder      = "Failed to place order. Please try again."
	MessageFailedPayment         = "Error processing payment. Please try again."
	MessageFailedConfirmDelivery = "Failed to confirm delivery."

	ErrMissingPaymentURL = errors.New("order response did not include a payment url")
	ErrOrderNotFound     = errors.New("order not found")
)

type (
	PlaceOrderResponse struct {
		PaystackURL string `json:"paystackUrl"`
		Reference   string `json:"reference,omitempty"`
		Message     string `json:"message,omitempty"`
	}

	ConfirmDeliveryRequest struct {
		OrderID             string `json:"orderId" validate:"required"`
		DeliveryPersonnelID string `json:"deliveryPersonnelId"`
	}
)

// PaymentStatusMessage maps the payment processor's return status to the
// message shown on the status page. Anything other than an explicit success
// or failure is still in flight.
func PaymentStatusMessage(status string) string {
	switch status {
	case PaymentStatusSuccess:
		return MessagePaymentSuccess
	case PaymentStatusFailed:
		return MessagePaymentFailed
	default:
		return MessagePaymentProcessing
	}
}
