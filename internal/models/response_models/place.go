package response_models

import (
	"context"
	"time"

	"ecotours/internal/models/db_models"
	"ecotours/pkg/utils"
)

type PlaceImage struct {
	ID       uint    `json:"id"`
	Image    *string `json:"image"`
	ImageURL *string `json:"image_url"`
}

type ItineraryPhoto struct {
	ID       uint    `json:"id"`
	Image    *string `json:"image"`
	ImageURL *string `json:"image_url"`
}

type ItineraryDay struct {
	ID                      uint             `json:"id"`
	Day                     int              `json:"day"`
	SubIterativeDescription string           `json:"sub_iterative_description"`
	SubDescription          string           `json:"sub_description"`
	Photos                  []ItineraryPhoto `json:"photos"`
}

type Place struct {
	ID             uint           `json:"id"`
	SubImages      []PlaceImage   `json:"sub_images"`
	ItineraryDays  []ItineraryDay `json:"itinerary_days"`
	MainImageURL   *string        `json:"main_image_url"`
	Name           string         `json:"name"`
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle"`
	Description    string         `json:"description"`
	Price          float64        `json:"price"`
	PriceTitle     string         `json:"price_title"`
	PackageTitle   string         `json:"package_title"`
	PlaceType      string         `json:"place_type"`
	AboutPlace     string         `json:"about_place"`
	TourHighlights string         `json:"tour_highlights"`
	Include        string         `json:"include"`
	Exclude        string         `json:"exclude"`
	MainImage      *string        `json:"main_image"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

type PlaceForBooking struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func NewPlace(ctx context.Context, p *db_models.Place) Place {
	out := Place{
		ID:             p.ID,
		SubImages:      make([]PlaceImage, 0, len(p.SubImages)),
		ItineraryDays:  make([]ItineraryDay, 0, len(p.ItineraryDays)),
		MainImageURL:   utils.MediaURL(ctx, p.MainImage),
		Name:           p.Name,
		Title:          p.Title,
		Subtitle:       p.Subtitle,
		Description:    p.Description,
		Price:          p.Price,
		PriceTitle:     p.PriceTitle,
		PackageTitle:   p.PackageTitle,
		PlaceType:      p.PlaceType,
		AboutPlace:     p.AboutPlace,
		TourHighlights: p.TourHighlights,
		Include:        p.Include,
		Exclude:        p.Exclude,
		MainImage:      utils.StoredRef(p.MainImage),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}

	for _, img := range p.SubImages {
		out.SubImages = append(out.SubImages, PlaceImage{
			ID:       img.ID,
			Image:    utils.StoredRef(img.Image),
			ImageURL: utils.MediaURL(ctx, img.Image),
		})
	}
	for i := range p.ItineraryDays {
		out.ItineraryDays = append(out.ItineraryDays, NewItineraryDay(ctx, &p.ItineraryDays[i]))
	}
	return out
}

func NewItineraryDay(ctx context.Context, d *db_models.ItineraryDay) ItineraryDay {
	day := ItineraryDay{
		ID:                      d.ID,
		Day:                     d.Day,
		SubIterativeDescription: d.SubIterativeDescription,
		SubDescription:          d.SubDescription,
		Photos:                  make([]ItineraryPhoto, 0, len(d.Photos)),
	}
	for _, photo := range d.Photos {
		day.Photos = append(day.Photos, ItineraryPhoto{
			ID:       photo.ID,
			Image:    utils.StoredRef(photo.Image),
			ImageURL: utils.MediaURL(ctx, photo.Image),
		})
	}
	return day
}

func NewPlaces(ctx context.Context, places []db_models.Place) []Place {
	out := make([]Place, 0, len(places))
	for i := range places {
		out = append(out, NewPlace(ctx, &places[i]))
	}
	return out
}
