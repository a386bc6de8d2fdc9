package controllers

import (
	"github.com/gin-gonic/gin"

	"ecotours/internal/models/request_models"
	"ecotours/internal/models/response_models"
	"ecotours/internal/services"
	"ecotours/pkg/utils"
)

type ContactController struct {
	*CrudController[request_models.ContactInput, response_models.Contact]
	contactService services.ContactServiceInterface
}

func NewContactController(contactService services.ContactServiceInterface) *ContactController {
	return &ContactController{
		CrudController: NewCrudController("Contact",
			services.CrudService[request_models.ContactInput, response_models.Contact](contactService)),
		contactService: contactService,
	}
}

// SocialLinks godoc
// @Summary Social links of the latest contact
// @Description Empty strings when no contact has been created yet.
// @Tags Contacts
// @Produce json
// @Success 200 {object} response_models.SocialLinks
// @Router /social-links/ [get]
func (cc *ContactController) SocialLinks(c *gin.Context) {
	links, err := cc.contactService.LatestSocialLinks(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondOK(c, links)
}
