package domain

import "mime/multipart"

const (
	DefaultProductLimit = 15
	DefaultProductPage  = 1
)

var (
	MessageSuccessGetProducts  = "products retrieved successfully"
	MessageSuccessSearch       = "search results retrieved successfully"
	MessageSuccessListProduct  = "Product uploaded successfully!"
	MessageFailedGetProducts   = "failed to retrieve products"
	MessageFailedSearch        = "failed to search products"
	MessageFailedListProduct   = "Failed to upload product. Please try again."
	MessageFailedProcessImage  = "Failed to process image. Please try a different one."
	MessageFailedMissingFields = "Please fill in all fields before uploading."
)

type ListProductRequest struct {
	Name        string                `json:"name" form:"name" validate:"required"`
	Price       float64               `json:"price" form:"price" validate:"required,gt=0"`
	Description string                `json:"description" form:"description" validate:"required"`
	Category    string                `json:"category" form:"category" validate:"required"`
	Image       *multipart.FileHeader `json:"image" form:"image" validate:"required"`
}
