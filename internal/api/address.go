package api

import (
	"net/http" // HTTP status codes

	"contact_system/internal/apperr"
	"contact_system/internal/middleware"
	"contact_system/internal/model"
	"contact_system/internal/service"

	"github.com/gin-gonic/gin" // Gin web framework
)

// CreateAddressHandler stores an address under an owned contact
func CreateAddressHandler(addressService service.AddressServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		contactID, err := pathID(c, "contactId", "contact_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		var req model.CreateAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Handle(c, apperr.Validation("request body is not valid"))
			return
		}
		resp, err := addressService.Create(middleware.CurrentUser(c), contactID, &req)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// GetAddressHandler returns one address under an owned contact
func GetAddressHandler(addressService service.AddressServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		contactID, err := pathID(c, "contactId", "contact_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		addressID, err := pathID(c, "addressId", "address_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		resp, err := addressService.Get(middleware.CurrentUser(c), contactID, addressID)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// UpdateAddressHandler overwrites one address under an owned contact
func UpdateAddressHandler(addressService service.AddressServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		contactID, err := pathID(c, "contactId", "contact_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		addressID, err := pathID(c, "addressId", "address_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		var req model.UpdateAddressRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Handle(c, apperr.Validation("request body is not valid"))
			return
		}
		req.ID = addressID
		resp, err := addressService.Update(middleware.CurrentUser(c), contactID, &req)
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: resp})
	}
}

// DeleteAddressHandler removes one address under an owned contact
func DeleteAddressHandler(addressService service.AddressServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		contactID, err := pathID(c, "contactId", "contact_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		addressID, err := pathID(c, "addressId", "address_id")
		if err != nil {
			apperr.Handle(c, err)
			return
		}
		if err := addressService.Remove(middleware.CurrentUser(c), contactID, addressID); err != nil {
			apperr.Handle(c, err)
			return
		}
		c.JSON(http.StatusOK, model.WebResponse{Data: "OK"})
	}
}
