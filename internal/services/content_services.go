package services

import (
	"context"

	"go.uber.org/zap"

	"ecotours/internal/models/db_models"
	"ecotours/internal/models/request_models"
	"ecotours/internal/models/response_models"
	"ecotours/internal/repositories"
	"ecotours/internal/storage"
	"ecotours/pkg/utils"
)

type (
	ItemServiceInterface        = CrudService[request_models.ItemInput, response_models.Item]
	ServicesServiceInterface    = CrudService[request_models.ServiceInput, response_models.Service]
	GalleryServiceInterface     = CrudService[request_models.GalleryPhotoInput, response_models.GalleryPhoto]
	PostServiceInterface        = CrudService[request_models.PostInput, response_models.Post]
	FrontServiceInterface       = CrudService[request_models.FrontInput, response_models.Front]
	UserDetailsServiceInterface = CrudService[request_models.UserDetailsInput, response_models.UserDetails]
)

// Upload directories below the media root.
const (
	dirPlaceMain       = "places/main"
	dirPlaceSubImages  = "places/sub_images"
	dirItineraryPhotos = "places/itinerary"
	dirItems           = "items"
	dirGallery         = "gallery"
	dirPosts           = "posts"
	dirFrontLogo       = "front/logo"
	dirCompanyLogo     = "front/company_logo"
)

func NewItemService(repo repositories.CrudRepository[db_models.Item], media storage.Media, log *zap.Logger) ItemServiceInterface {
	return &resource[db_models.Item, request_models.ItemInput, response_models.Item]{
		name:     "item",
		notFound: utils.ErrItemNotFound,
		repo:     repo,
		media:    media,
		log:      log,
		newInput: func() *request_models.ItemInput { return &request_models.ItemInput{} },
		prefill:  (*request_models.ItemInput).FromModel,
		stage: func(ctx context.Context, in *request_models.ItemInput, up *uploads) error {
			return up.store(ctx, "image", dirItems, in.Image)
		},
		apply: func(in *request_models.ItemInput, m *db_models.Item, up *uploads) error {
			in.Apply(m)
			up.replace("image", &m.Image)
			return nil
		},
		present: response_models.NewItem,
		files:   func(m *db_models.Item) []string { return []string{m.Image} },
	}
}

func NewServicesService(repo repositories.CrudRepository[db_models.Service], log *zap.Logger) ServicesServiceInterface {
	return &resource[db_models.Service, request_models.ServiceInput, response_models.Service]{
		name:     "service",
		notFound: utils.ErrServiceNotFound,
		repo:     repo,
		log:      log,
		newInput: func() *request_models.ServiceInput { return &request_models.ServiceInput{} },
		prefill:  (*request_models.ServiceInput).FromModel,
		apply: func(in *request_models.ServiceInput, m *db_models.Service, _ *uploads) error {
			in.Apply(m)
			return nil
		},
		present: func(_ context.Context, m *db_models.Service) response_models.Service {
			return response_models.NewService(m)
		},
	}
}

func NewGalleryService(repo repositories.CrudRepository[db_models.GalleryPhoto], media storage.Media, log *zap.Logger) GalleryServiceInterface {
	return &resource[db_models.GalleryPhoto, request_models.GalleryPhotoInput, response_models.GalleryPhoto]{
		name:     "gallery photo",
		notFound: utils.ErrGalleryPhotoNotFound,
		repo:     repo,
		media:    media,
		log:      log,
		newInput: func() *request_models.GalleryPhotoInput { return &request_models.GalleryPhotoInput{} },
		stage: func(ctx context.Context, in *request_models.GalleryPhotoInput, up *uploads) error {
			return up.store(ctx, "image", dirGallery, in.Image)
		},
		apply: func(_ *request_models.GalleryPhotoInput, m *db_models.GalleryPhoto, up *uploads) error {
			up.replace("image", &m.Image)
			return nil
		},
		present: response_models.NewGalleryPhoto,
		files:   func(m *db_models.GalleryPhoto) []string { return []string{m.Image} },
	}
}

func NewPostService(repo repositories.CrudRepository[db_models.Post], media storage.Media, log *zap.Logger) PostServiceInterface {
	return &resource[db_models.Post, request_models.PostInput, response_models.Post]{
		name:     "post",
		notFound: utils.ErrPostNotFound,
		repo:     repo,
		media:    media,
		log:      log,
		newInput: func() *request_models.PostInput { return &request_models.PostInput{} },
		prefill:  (*request_models.PostInput).FromModel,
		stage: func(ctx context.Context, in *request_models.PostInput, up *uploads) error {
			return up.store(ctx, "post_image", dirPosts, in.PostImage)
		},
		apply: func(in *request_models.PostInput, m *db_models.Post, up *uploads) error {
			in.Apply(m)
			up.replace("post_image", &m.PostImage)
			return nil
		},
		present: response_models.NewPost,
		files:   func(m *db_models.Post) []string { return []string{m.PostImage} },
	}
}

func NewFrontService(repo repositories.CrudRepository[db_models.Front], media storage.Media, log *zap.Logger) FrontServiceInterface {
	return &resource[db_models.Front, request_models.FrontInput, response_models.Front]{
		name:     "front",
		notFound: utils.ErrFrontNotFound,
		repo:     repo,
		media:    media,
		log:      log,
		newInput: func() *request_models.FrontInput { return &request_models.FrontInput{} },
		prefill:  (*request_models.FrontInput).FromModel,
		stage: func(ctx context.Context, in *request_models.FrontInput, up *uploads) error {
			if err := up.store(ctx, "logo_image", dirFrontLogo, in.LogoImage); err != nil {
				return err
			}
			return up.store(ctx, "company_logo", dirCompanyLogo, in.CompanyLogo)
		},
		apply: func(in *request_models.FrontInput, m *db_models.Front, up *uploads) error {
			in.Apply(m)
			up.replace("logo_image", &m.LogoImage)
			up.replace("company_logo", &m.CompanyLogo)
			return nil
		},
		present: response_models.NewFront,
		files:   func(m *db_models.Front) []string { return []string{m.LogoImage, m.CompanyLogo} },
	}
}

// userDetailsService notifies the site owner about every new message.
type userDetailsService struct {
	*resource[db_models.UserDetails, request_models.UserDetailsInput, response_models.UserDetails]
	notifier NotificationServiceInterface
}

func NewUserDetailsService(repo repositories.CrudRepository[db_models.UserDetails], notifier NotificationServiceInterface, log *zap.Logger) UserDetailsServiceInterface {
	return &userDetailsService{
		resource: &resource[db_models.UserDetails, request_models.UserDetailsInput, response_models.UserDetails]{
			name:     "user details",
			notFound: utils.ErrUserDetailsNotFound,
			repo:     repo,
			log:      log,
			newInput: func() *request_models.UserDetailsInput { return &request_models.UserDetailsInput{} },
			prefill:  (*request_models.UserDetailsInput).FromModel,
			apply: func(in *request_models.UserDetailsInput, m *db_models.UserDetails, _ *uploads) error {
				in.Apply(m)
				return nil
			},
			present: func(_ context.Context, m *db_models.UserDetails) response_models.UserDetails {
				return response_models.NewUserDetails(m)
			},
		},
		notifier: notifier,
	}
}

func (s *userDetailsService) Create(ctx context.Context, bind func(*request_models.UserDetailsInput) error) (*response_models.UserDetails, error) {
	m, err := s.create(ctx, bind, nil)
	if err != nil {
		return nil, err
	}
	s.notifier.ContactMessageReceived(ctx, m)

	out := s.present(ctx, m)
	return &out, nil
}
