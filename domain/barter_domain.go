package domain

import (
	"errors"
	"mime/multipart"
)

const WantedItemDescriptionMax = 50

var (
	MessageSuccessGetBarterItems = "barter items retrieved successfully"
	MessageSuccessListItem       = "barter item listed successfully"
	MessageSuccessDelistItem     = "barter item delisted successfully"
	MessageSuccessValidateField  = "field validated"

	MessageFailedGetBarterItems = "failed to retrieve barter items"
	MessageFailedListItem       = "Failed to upload item. Please try again."
	MessageFailedDelistItem     = "failed to delist item"
	MessageNotItemOwner         = "You are not the rightful owner to delete this item!"
	MessageWantedItemTooLong    = "Wanted item description should not exceed 50 characters."
	MessagePhoneInvalid         = "Phone number must be exactly 10 digits."

	ErrBarterItemNotFound = errors.New("barter item not found")
	ErrNotItemOwner       = errors.New("not the owner of this barter item")
)

type (
	BarterListRequest struct {
		ItemName              string                `json:"itemName" form:"itemName" validate:"required"`
		Description           string                `json:"description" form:"description" validate:"required"`
		WantedItemDescription string                `json:"wantedItemDescription" form:"wantedItemDescription" validate:"required,max=50"`
		Phone                 string                `json:"phone" form:"phone" validate:"required,phone10"`
		Image                 *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// ValidateFieldRequest carries a single form field for inline validation
	// while the user is still typing.
	ValidateFieldRequest struct {
		Name  string `json:"name" validate:"required"`
		Value string `json:"value"`
	}

	ValidateFieldResult struct {
		Valid   bool   `json:"valid"`
		Message string `json:"message,omitempty"`
	}
)
