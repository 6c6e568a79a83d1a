package domain

import "errors"

var (
	MessageSuccessSignup         = "signup submitted, check your student email for the code"
	MessageSuccessVerifyOtp      = "account verified successfully"
	MessageSuccessResendOtp      = "verification code resent"
	MessageSuccessLogin          = "logged in successfully"
	MessageSuccessLogout         = "Logged out successfully"
	MessageSuccessGetMe          = "user retrieved successfully"
	MessageSuccessBecomeSeller   = "You are now a seller!"
	MessageSuccessBecomeDelivery = "You are now a delivery personnel!"
	MessageNoActiveSession       = "no active session"

	MessageFailedSignup         = "Signup failed"
	MessageFailedVerifyOtp      = "OTP verification failed"
	MessageFailedResendOtp      = "Resend OTP failed"
	MessageFailedLogin          = "Login failed"
	MessageFailedLogout         = "failed to log out"
	MessageFailedBecomeSeller   = "Failed to become a seller."
	MessageFailedBecomeDelivery = "Failed to become a delivery personnel."

	ErrSessionNotFound = errors.New("session not found")
	ErrNoPendingSignup = errors.New("no signup data found")
)

type (
	SignupRequest struct {
		Username     string `json:"username" validate:"required"`
		StudentEmail string `json:"studentEmail" validate:"required,email"`
		Residence    string `json:"residence" validate:"required"`
		Password     string `json:"password" validate:"required,min=6"`
	}

	VerifyOtpRequest struct {
		EnteredOtp string `json:"enteredOtp" validate:"required"`
	}

	LoginRequest struct {
		StudentEmail string `json:"studentEmail" validate:"required,email"`
		Password     string `json:"password" validate:"required"`
	}

	BecomeSellerRequest struct {
		StoreName   string `json:"storeName" validate:"required"`
		SellerPhone string `json:"sellerPhone" validate:"required,phone10"`
		IDNumber    string `json:"idNumber" validate:"required"`
	}

	BecomeDeliveryRequest struct {
		DeliveryPhone string `json:"deliveryPhone" validate:"required,phone10"`
	}
)
