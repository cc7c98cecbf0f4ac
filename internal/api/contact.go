package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"contact_system/internal/apperr"
	"contact_system/internal/middleware"
	"contact_system/internal/model"
	"contact_system/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateContactHandler stores a contact owned by the authenticated user
func CreateContactHandler(contactService service.ContactServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.CreateContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Handle(c, apperr.Validation("request body is not valid"))
			return
		}
		resp, err := contactService.Create(middleware.CurrentUser(c), &req)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// GetContactHandler returns one owned contact
func GetContactHandler(contactService service.ContactServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		contactID, err := pathID(c, "contactId", "contact_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		resp, err := contactService.Get(middleware.CurrentUser(c), contactID)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// UpdateContactHandler overwrites one owned contact; the path id wins over
// whatever the body carries
func UpdateContactHandler(contactService service.ContactServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		contactID, err := pathID(c, "contactId", "contact_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		var req model.UpdateContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Handle(c, apperr.Validation("request body is not valid"))
			return
		}
		req.ID = contactID
		resp, err := contactService.Update(middleware.CurrentUser(c), &req)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// DeleteContactHandler removes one owned contact
func DeleteContactHandler(contactService service.ContactServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		contactID, err := pathID(c, "contactId", "contact_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		if err := contactService.Remove(middleware.CurrentUser(c), contactID); err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: "OK"})
	}
}

// SearchContactHandler lists the user's contacts with optional filters and
// paging. Out-of-range paging values silently fall back to the defaults.
func SearchContactHandler(contactService service.ContactServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := model.SearchContactRequest{
			Name:  c.Query("name"),
			Email: c.Query("email"),
			Phone: c.Query("phone"),
			Page:  1,  // Default page number
			Size:  10, // Default page size
		}
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				req.Page = v
			}
		}
		if s := c.Query("size"); s != "" {
			if v, err := strconv.Atoi(s); err == nil && v > 0 {
				req.Size = v
			}
		}
		resp, paging, err := contactService.Search(middleware.CurrentUser(c), &req)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp, Paging: paging})
	}
}
