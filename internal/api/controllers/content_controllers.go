package controllers

import (
	"ecotours/internal/models/request_models"
	"ecotours/internal/models/response_models"
	"ecotours/internal/services"
)

type (
	BookingController     = CrudController[request_models.BookingInput, response_models.Booking]
	ItemController        = CrudController[request_models.ItemInput, response_models.Item]
	ServiceController     = CrudController[request_models.ServiceInput, response_models.Service]
	GalleryController     = CrudController[request_models.GalleryPhotoInput, response_models.GalleryPhoto]
	PostController        = CrudController[request_models.PostInput, response_models.Post]
	FrontController       = CrudController[request_models.FrontInput, response_models.Front]
	UserDetailsController = CrudController[request_models.UserDetailsInput, response_models.UserDetails]
)

func NewBookingController(s services.BookingServiceInterface) *BookingController {
	return NewCrudController("Booking", s)
}

func NewItemController(s services.ItemServiceInterface) *ItemController {
	return NewCrudController("Item", s)
}

func NewServiceController(s services.ServicesServiceInterface) *ServiceController {
	return NewCrudController("Service", s)
}

func NewGalleryController(s services.GalleryServiceInterface) *GalleryController {
	return NewCrudController("Gallery photo", s)
}

func NewPostController(s services.PostServiceInterface) *PostController {
	return NewCrudController("Post", s)
}

func NewFrontController(s services.FrontServiceInterface) *FrontController {
	return NewCrudController("Front content", s)
}

func NewUserDetailsController(s services.UserDetailsServiceInterface) *UserDetailsController {
	return NewCrudController("User details", s)
}
