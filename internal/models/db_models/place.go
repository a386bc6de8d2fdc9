package db_models

const (
	PlaceTypeTrending     = "trending"
	PlaceTypeFiveDay      = "five_day"
	PlaceTypeSevenDays    = "seven_days"
	PlaceTypeEightDays    = "eight_days"
	PlaceTypeTenDays      = "ten_days"
	PlaceTypeFourteenDays = "fourteen_days"
	// Spelled the way the public site filters on it.
	PlaceTypeEighteenDays = "eighteen_dyas"
)

type Place struct {
	BaseModel
	Name           string  `gorm:"size:255;not null"`
	Title          string  `gorm:"size:255"`
	Subtitle       string  `gorm:"size:255"`
	Description    string  `gorm:"type:text"`
	Price          float64 `gorm:"type:decimal(10,2);not null;default:0"`
	PriceTitle     string  `gorm:"size:255"`
	PackageTitle   string  `gorm:"size:255"`
	PlaceType      string  `gorm:"size:20;index"`
	AboutPlace     string  `gorm:"type:text"`
	TourHighlights string  `gorm:"type:text"`
	Include        string  `gorm:"type:text"`
	Exclude        string  `gorm:"type:text"`
	MainImage      string  `gorm:"size:512"`

	SubImages     []PlaceImage   `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
	ItineraryDays []ItineraryDay `gorm:"foreignKey:PlaceID;constraint:OnDelete:CASCADE"`
}

type PlaceImage struct {
	BaseModel
	PlaceID uint   `gorm:"not null;index"`
	Image   string `gorm:"size:512;not null"`
}

type ItineraryDay struct {
	BaseModel
	PlaceID                 uint   `gorm:"not null;index"`
	Day                     int    `gorm:"not null"`
	SubIterativeDescription string `gorm:"type:text"`
	SubDescription          string `gorm:"type:text"`

	Photos []ItineraryPhoto `gorm:"foreignKey:ItineraryDayID;constraint:OnDelete:CASCADE"`
}

type ItineraryPhoto struct {
	BaseModel
	ItineraryDayID uint   `gorm:"not null;index"`
	Image          string `gorm:"size:512;not null"`
}

// Images returns every stored file owned by the place.
func (p *Place) Images() []string {
	var refs []string
	if p.MainImage != "" {
		refs = append(refs, p.MainImage)
	}
	for _, img := range p.SubImages {
		refs = append(refs, img.Image)
	}
	for _, day := range p.ItineraryDays {
		refs = append(refs, day.Images()...)
	}
	return refs
}

func (d *ItineraryDay) Images() []string {
	refs := make([]string, 0, len(d.Photos))
	for _, photo := range d.Photos {
		refs = append(refs, photo.Image)
	}
	return refs
}
