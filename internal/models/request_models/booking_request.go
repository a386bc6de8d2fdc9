package request_models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"ecotours/internal/models/db_models"
	"ecotours/pkg/utils"
)

const DateLayout = "2006-01-02"

// PricePlaces matches the scale of the decimal(10,2) price columns.
const PricePlaces = 2

// BookingInput carries the client writable booking fields. The owning user
// is not among them; it is assigned from the authenticated caller.
type BookingInput struct {
	Place        uint       `json:"place" form:"place" binding:"required"`
	UserName     string     `json:"user_name" form:"user_name" binding:"required,max=255"`
	Email        string     `json:"email" form:"email" binding:"required,email,max=254"`
	Phone        string     `json:"phone" form:"phone" binding:"max=30"`
	ArrivalDate  string     `json:"arrival_date" form:"arrival_date" binding:"required,datetime=2006-01-02"`
	Price        float64    `json:"price" form:"price" binding:"gte=0,lte=99999999.99"`
	Adults       int        `json:"adults" form:"adults" binding:"gte=1"`
	Children     int        `json:"children" form:"children" binding:"gte=0"`
	ChildrenAges StringList `json:"children_ages" form:"children_ages"`
	Description  string     `json:"description" form:"description"`
	Status       string     `json:"status" form:"status" binding:"omitempty,oneof=pending approved rejected cancelled"`
}

// NewBookingInput returns an input holding the model defaults.
func NewBookingInput() *BookingInput {
	return &BookingInput{Adults: 1}
}

func (in *BookingInput) FromModel(b *db_models.Booking) {
	in.Place = b.PlaceID
	in.UserName = b.UserName
	in.Email = b.Email
	in.Phone = b.Phone
	in.ArrivalDate = b.ArrivalDate.Format(DateLayout)
	in.Price = b.Price
	in.Adults = b.Adults
	in.Children = b.Children
	in.ChildrenAges = StringList(b.ChildrenAges)
	in.Description = b.Description
	in.Status = b.Status
}

func (in *BookingInput) Apply(b *db_models.Booking) error {
	verr := &utils.ValidationError{}
	arrival, err := time.Parse(DateLayout, in.ArrivalDate)
	if err != nil {
		verr.Add("arrival_date", "Date has wrong format. Use YYYY-MM-DD.")
	}
	if msg := utils.DecimalPlacesMessage(in.Price, PricePlaces); msg != "" {
		verr.Add("price", msg)
	}
	if len(verr.Fields) > 0 {
		return verr
	}

	b.PlaceID = in.Place
	b.UserName = strings.TrimSpace(in.UserName)
	b.Email = strings.TrimSpace(in.Email)
	b.Phone = in.Phone
	b.ArrivalDate = arrival
	b.Price = in.Price
	b.Adults = in.Adults
	b.Children = in.Children
	b.ChildrenAges = append([]string{}, in.ChildrenAges...)
	b.Description = in.Description
	if in.Status != "" {
		b.Status = in.Status
	} else if b.Status == "" {
		b.Status = db_models.BookingPending
	}
	return nil
}

// StringList decodes a JSON array whose items may be strings or numbers,
// e.g. children ages sent as [4, "7"].
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = StringList{}
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return &utils.FieldError{Field: "children_ages", Message: "Expected a list of items."}
	}

	out := make(StringList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var n json.Number
		if err := json.Unmarshal(item, &n); err != nil {
			return &utils.FieldError{Field: "children_ages", Message: "Each item must be a string or a number."}
		}
		out = append(out, n.String())
	}
	*l = out
	return nil
}
