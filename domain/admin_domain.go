package domain

const StatusApproved = "approved"

var (
	MessageSuccessGetPending      = "pending entries retrieved successfully"
	MessageSuccessApproveProduct  = "product approved successfully"
	MessageSuccessApproveSeller   = "seller approved successfully"
	MessageSuccessApproveDelivery = "delivery personnel approved successfully"
	MessageSuccessAdminDelist     = "barter item removed successfully"
	MessageAccessDeniedAdmin      = "Access Denied: You are not assigned the admin role"

	MessageFailedGetPending      = "failed to retrieve pending entries"
	MessageFailedApproveProduct  = "failed to approve product"
	MessageFailedApproveSeller   = "failed to approve seller"
	MessageFailedApproveDelivery = "failed to approve delivery personnel"
	MessageFailedAdminDelist     = "failed to remove barter item"
)

type ApprovalRequest struct {
	Status string `json:"status"`
}
