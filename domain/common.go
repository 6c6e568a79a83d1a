package domain

import "errors"

const (
	RoleBuyer    = "buyer"
	RoleSeller   = "seller"
	RoleDelivery = "delivery"
	RoleAdmin    = "admin"
)

const (
	SessionCookieName = "techsell_session"
	SignupCookieName  = "signup_id"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrTokenNotFound = errors.New("failed to token not found")
	ErrTokenInvalid  = errors.New("token invalid")
	ErrTokenExpired  = errors.New("token expired")
)
