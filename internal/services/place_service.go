package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"ecotours/internal/models/db_models"
	"ecotours/internal/models/request_models"
	"ecotours/internal/models/response_models"
	"ecotours/internal/repositories"
	"ecotours/internal/storage"
	"ecotours/pkg/utils"
)

type PlaceServiceInterface interface {
	CrudService[request_models.PlaceInput, response_models.Place]
	DeleteItineraryPhoto(ctx context.Context, photoID uint) error
	DeleteSubImage(ctx context.Context, imageID uint) error
	ListForBooking(ctx context.Context) ([]response_models.PlaceForBooking, error)
}

type PlaceService struct {
	repo  repositories.PlaceRepository
	media storage.Media
	log   *zap.Logger
}

func NewPlaceService(repo repositories.PlaceRepository, media storage.Media, log *zap.Logger) PlaceServiceInterface {
	return &PlaceService{repo: repo, media: media, log: log}
}

func (s *PlaceService) List(ctx context.Context, page utils.Page) ([]response_models.Place, error) {
	places, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, failure(ctx, s.log, "list", "place", 0, err)
	}
	return response_models.NewPlaces(ctx, places), nil
}

func (s *PlaceService) Get(ctx context.Context, id uint) (*response_models.Place, error) {
	place, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, failure(ctx, s.log, "get", "place", id, err)
	}
	if place == nil {
		return nil, utils.ErrPlaceNotFound
	}
	out := response_models.NewPlace(ctx, place)
	return &out, nil
}

func (s *PlaceService) Create(ctx context.Context, bind func(*request_models.PlaceInput) error) (*response_models.Place, error) {
	in := &request_models.PlaceInput{}
	if err := bind(in); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var place db_models.Place
	up := newUploads(s.media)
	err := s.stage(ctx, in, up)
	if err == nil {
		err = s.apply(in, &place, up)
	}
	if err == nil {
		err = s.repo.Create(ctx, &place)
	}
	up.finish(ctx, err)
	if err != nil {
		return nil, failure(ctx, s.log, "create", "place", 0, err)
	}

	return s.Get(ctx, place.ID)
}

// Update prepares the input and the uploads outside the row lock; only the
// merge into the locked place and the save run inside it.
func (s *PlaceService) Update(ctx context.Context, id uint, partial bool, bind func(*request_models.PlaceInput) error) (*response_models.Place, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, failure(ctx, s.log, "update", "place", id, err)
	}
	if current == nil {
		return nil, utils.ErrPlaceNotFound
	}

	in := &request_models.PlaceInput{}
	var base *request_models.PlaceInput
	if partial {
		in.FromModel(current)
		snapshot := *in
		base = &snapshot
	}
	if err := bind(in); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	up := newUploads(s.media)
	var updated *db_models.Place
	err = s.stage(ctx, in, up)
	if err == nil {
		updated, err = s.repo.Update(ctx, id, func(place *db_models.Place) error {
			if base != nil {
				latest := &request_models.PlaceInput{}
				latest.FromModel(place)
				rebase(in, base, latest)
			}
			return s.apply(in, place, up)
		})
		if err == nil && updated == nil {
			err = utils.ErrPlaceNotFound
		}
	}
	up.finish(ctx, err)
	if err != nil {
		return nil, failure(ctx, s.log, "update", "place", id, err)
	}

	out := response_models.NewPlace(ctx, updated)
	return &out, nil
}

// stage stores every uploaded file of in. Day photos are kept under their
// itinerary_photos_<i> field.
func (s *PlaceService) stage(ctx context.Context, in *request_models.PlaceInput, up *uploads) error {
	if err := up.store(ctx, "main_image", dirPlaceMain, in.MainImage); err != nil {
		return err
	}
	if err := up.store(ctx, "sub_images", dirPlaceSubImages, in.SubImages...); err != nil {
		return err
	}
	for _, pos := range dayPositions(in) {
		field := request_models.DayPhotoField + strconv.Itoa(pos)
		if err := up.store(ctx, field, dirItineraryPhotos, in.DayPhotos[pos]...); err != nil {
			return err
		}
	}
	return nil
}

// apply copies the input onto place. A supplied itinerary replaces the
// current one: listed ids keep their day and photos, unlisted days go.
// Photos uploaded as itinerary_photos_<i> are appended to the day at
// position i of the resulting itinerary.
func (s *PlaceService) apply(in *request_models.PlaceInput, place *db_models.Place, up *uploads) error {
	in.Apply(place)

	if in.ItineraryDays != nil {
		existing := make(map[uint]db_models.ItineraryDay, len(place.ItineraryDays))
		for _, day := range place.ItineraryDays {
			existing[day.ID] = day
		}

		days := make([]db_models.ItineraryDay, 0, len(in.ItineraryDays.Days))
		for i, d := range in.ItineraryDays.Days {
			var day db_models.ItineraryDay
			if d.ID != nil {
				current, ok := existing[*d.ID]
				if !ok {
					return utils.NewValidationError(fmt.Sprintf("itinerary_days[%d].id", i),
						fmt.Sprintf("Itinerary day %d does not belong to this place.", *d.ID))
				}
				day = current
				delete(existing, *d.ID)
			}
			day.Day = d.Day
			day.SubIterativeDescription = d.SubIterativeDescription
			day.SubDescription = d.SubDescription
			days = append(days, day)
		}

		for _, removed := range existing {
			up.drop(removed.Images()...)
		}
		place.ItineraryDays = days
	}

	positions := dayPositions(in)
	for _, pos := range positions {
		if pos >= len(place.ItineraryDays) {
			return utils.NewValidationError(request_models.DayPhotoField+strconv.Itoa(pos),
				"No itinerary day at this position.")
		}
	}

	up.replace("main_image", &place.MainImage)
	for _, ref := range up.refs("sub_images") {
		place.SubImages = append(place.SubImages, db_models.PlaceImage{Image: ref})
	}
	for _, pos := range positions {
		day := &place.ItineraryDays[pos]
		for _, ref := range up.refs(request_models.DayPhotoField + strconv.Itoa(pos)) {
			day.Photos = append(day.Photos, db_models.ItineraryPhoto{Image: ref})
		}
	}
	return nil
}

func dayPositions(in *request_models.PlaceInput) []int {
	positions := make([]int, 0, len(in.DayPhotos))
	for pos := range in.DayPhotos {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

func (s *PlaceService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return failure(ctx, s.log, "delete", "place", id, err)
	}
	if deleted == nil {
		return utils.ErrPlaceNotFound
	}
	s.media.Discard(ctx, deleted.Images()...)
	return nil
}

func (s *PlaceService) DeleteItineraryPhoto(ctx context.Context, photoID uint) error {
	photo, err := s.repo.DeleteItineraryPhoto(ctx, photoID)
	if err != nil {
		return failure(ctx, s.log, "delete", "itinerary photo", photoID, err)
	}
	if photo == nil {
		return utils.ErrItineraryPhotoNotFound
	}
	s.media.Discard(ctx, photo.Image)
	return nil
}

func (s *PlaceService) DeleteSubImage(ctx context.Context, imageID uint) error {
	img, err := s.repo.DeleteSubImage(ctx, imageID)
	if err != nil {
		return failure(ctx, s.log, "delete", "place image", imageID, err)
	}
	if img == nil {
		return utils.ErrPlaceImageNotFound
	}
	s.media.Discard(ctx, img.Image)
	return nil
}

func (s *PlaceService) ListForBooking(ctx context.Context) ([]response_models.PlaceForBooking, error) {
	summaries, err := s.repo.ListForBooking(ctx)
	if err != nil {
		return nil, failure(ctx, s.log, "list for booking", "place", 0, err)
	}
	out := make([]response_models.PlaceForBooking, 0, len(summaries))
	for _, p := range summaries {
		out = append(out, response_models.PlaceForBooking{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return out, nil
}
