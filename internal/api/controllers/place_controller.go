package controllers

import (
	"github.com/gin-gonic/gin"

	"ecotours/internal/models/request_models"
	"ecotours/internal/models/response_models"
	"ecotours/internal/services"
	"ecotours/pkg/utils"
)

type PlaceController struct {
	*CrudController[request_models.PlaceInput, response_models.Place]
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{
		CrudController: NewCrudController("Place", services.CrudService[request_models.PlaceInput, response_models.Place](placeService),
			WithBinder[request_models.PlaceInput, response_models.Place](bindPlace)),
		placeService: placeService,
	}
}

// bindPlace also collects the per-day photo files, whose field names are
// only known at request time.
func bindPlace(c *gin.Context, in *request_models.PlaceInput) error {
	if err := bindBody(c, in); err != nil {
		return err
	}
	if c.Request.MultipartForm != nil {
		in.DayPhotos = request_models.CollectDayPhotos(c.Request.MultipartForm)
	}
	return nil
}

// DeleteItineraryPhoto godoc
// @Summary Delete one itinerary photo
// @Tags Places
// @Security BearerAuth
// @Param photoId path int true "Itinerary photo id"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /places/itinerary-photo/{photoId}/delete/ [delete]
func (p *PlaceController) DeleteItineraryPhoto(c *gin.Context) {
	photoID, ok := parseID(c, "photoId", "Itinerary photo")
	if !ok {
		return
	}

	if err := p.placeService.DeleteItineraryPhoto(c.Request.Context(), photoID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// DeleteSubImage godoc
// @Summary Delete one gallery image of a place
// @Tags Places
// @Security BearerAuth
// @Param imageId path int true "Place image id"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /places/sub-image/{imageId}/delete/ [delete]
func (p *PlaceController) DeleteSubImage(c *gin.Context) {
	imageID, ok := parseID(c, "imageId", "Place image")
	if !ok {
		return
	}

	if err := p.placeService.DeleteSubImage(c.Request.Context(), imageID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// ListForBooking godoc
// @Summary Places offered in the booking form
// @Description Reduced listing with id, name and price only.
// @Tags Bookings
// @Produce json
// @Success 200 {array} response_models.PlaceForBooking
// @Router /bookings/places/ [get]
func (p *PlaceController) ListForBooking(c *gin.Context) {
	places, err := p.placeService.ListForBooking(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, places)
}
