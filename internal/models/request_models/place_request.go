package request_models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"ecotours/internal/models/db_models"
	"ecotours/pkg/utils"
)

// DayPhotoField prefixes the multipart file fields carrying photos for the
// itinerary day at the given position, e.g. itinerary_photos_0.
const DayPhotoField = "itinerary_photos_"

type PlaceInput struct {
	Name           string         `json:"name" form:"name" binding:"required,max=255"`
	Title          string         `json:"title" form:"title" binding:"max=255"`
	Subtitle       string         `json:"subtitle" form:"subtitle" binding:"max=255"`
	Description    string         `json:"description" form:"description"`
	Price          float64        `json:"price" form:"price" binding:"gte=0,lte=99999999.99"`
	PriceTitle     string         `json:"price_title" form:"price_title" binding:"max=255"`
	PackageTitle   string         `json:"package_title" form:"package_title" binding:"max=255"`
	PlaceType      string         `json:"place_type" form:"place_type" binding:"omitempty,oneof=trending five_day seven_days eight_days ten_days fourteen_days eighteen_dyas"`
	AboutPlace     string         `json:"about_place" form:"about_place"`
	TourHighlights string         `json:"tour_highlights" form:"tour_highlights"`
	Include        string         `json:"include" form:"include"`
	Exclude        string         `json:"exclude" form:"exclude"`
	ItineraryDays  *ItineraryDays `json:"itinerary_days" form:"itinerary_days"`

	MainImage *multipart.FileHeader   `json:"-" form:"main_image"`
	SubImages []*multipart.FileHeader `json:"-" form:"sub_images"`

	// DayPhotos maps an itinerary day position to its uploaded photos.
	DayPhotos map[int][]*multipart.FileHeader `json:"-" form:"-"`
}

// FromModel prefills the writable fields, so that binding a partial payload
// on top only changes what the client sent.
func (in *PlaceInput) FromModel(p *db_models.Place) {
	in.Name = p.Name
	in.Title = p.Title
	in.Subtitle = p.Subtitle
	in.Description = p.Description
	in.Price = p.Price
	in.PriceTitle = p.PriceTitle
	in.PackageTitle = p.PackageTitle
	in.PlaceType = p.PlaceType
	in.AboutPlace = p.AboutPlace
	in.TourHighlights = p.TourHighlights
	in.Include = p.Include
	in.Exclude = p.Exclude
}

func (in *PlaceInput) Apply(p *db_models.Place) {
	p.Name = strings.TrimSpace(in.Name)
	p.Title = in.Title
	p.Subtitle = in.Subtitle
	p.Description = in.Description
	p.Price = in.Price
	p.PriceTitle = in.PriceTitle
	p.PackageTitle = in.PackageTitle
	p.PlaceType = in.PlaceType
	p.AboutPlace = in.AboutPlace
	p.TourHighlights = in.TourHighlights
	p.Include = in.Include
	p.Exclude = in.Exclude
}

// Validate checks what struct tags cannot express.
func (in *PlaceInput) Validate() error {
	verr := &utils.ValidationError{}
	if strings.TrimSpace(in.Name) == "" {
		verr.Add("name", "This field may not be blank.")
	}
	if msg := utils.DecimalPlacesMessage(in.Price, PricePlaces); msg != "" {
		verr.Add("price", msg)
	}

	var days []ItineraryDayInput
	if in.ItineraryDays != nil {
		days = in.ItineraryDays.Days
	}
	seen := make(map[uint]bool)
	for i, d := range days {
		if d.Day < 1 {
			verr.Add(fmt.Sprintf("itinerary_days[%d].day", i), "Ensure this value is greater than or equal to 1.")
		}
		if d.ID != nil {
			if seen[*d.ID] {
				verr.Add(fmt.Sprintf("itinerary_days[%d].id", i), "Duplicate itinerary day.")
			}
			seen[*d.ID] = true
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// CollectDayPhotos picks the itinerary_photos_<i> files out of a multipart form.
func CollectDayPhotos(form *multipart.Form) map[int][]*multipart.FileHeader {
	if form == nil {
		return nil
	}
	photos := make(map[int][]*multipart.FileHeader)
	for key, files := range form.File {
		if !strings.HasPrefix(key, DayPhotoField) {
			continue
		}
		pos, err := strconv.Atoi(strings.TrimPrefix(key, DayPhotoField))
		if err != nil || pos < 0 {
			continue
		}
		photos[pos] = append(photos[pos], files...)
	}
	return photos
}

type ItineraryDayInput struct {
	// ID refers to an existing day of the place; nil creates a new day.
	ID                      *uint  `json:"id,omitempty"`
	Day                     int    `json:"day"`
	SubIterativeDescription string `json:"sub_iterative_description"`
	SubDescription          string `json:"sub_description"`
}

// ItineraryDays is the complete itinerary of a place. It binds from a JSON
// array and, in multipart forms, from a JSON encoded string.
type ItineraryDays struct {
	Days []ItineraryDayInput
}

func (d *ItineraryDays) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var encoded string
		if err := json.Unmarshal(data, &encoded); err != nil {
			return err
		}
		return d.UnmarshalParam(encoded)
	}
	return d.decode(data)
}

func (d *ItineraryDays) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		d.Days = []ItineraryDayInput{}
		return nil
	}
	return d.decode([]byte(param))
}

func (d *ItineraryDays) decode(data []byte) error {
	var days []ItineraryDayInput
	if err := json.Unmarshal(data, &days); err != nil {
		return &utils.FieldError{Field: "itinerary_days", Message: "Expected a list of itinerary days."}
	}
	if days == nil {
		days = []ItineraryDayInput{}
	}
	d.Days = days
	return nil
}
