package services

import "errors"

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrSerialNumberTaken = errors.New("serial number already in use")
)
