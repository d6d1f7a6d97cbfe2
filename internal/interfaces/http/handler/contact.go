package handler

import (
	"github.com/gin-gonic/gin"
	partnerapp "github.com/marketlink/backend/internal/application/partner"
)

// ContactHandler handles delivery contact endpoints
type ContactHandler struct {
	BaseHandler
	contactService *partnerapp.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *partnerapp.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// ContactRequest carries the delivery address and phone
type ContactRequest struct {
	City      string `json:"city" binding:"required,min=1,max=100"`
	Street    string `json:"street" binding:"max=200"`
	House     string `json:"house" binding:"max=20"`
	Structure string `json:"structure" binding:"max=20"`
	Building  string `json:"building" binding:"max=20"`
	Apartment string `json:"apartment" binding:"max=20"`
	Phone     string `json:"phone" binding:"required,min=5,max=30"`
}

func (r ContactRequest) toInput() partnerapp.ContactInput {
	return partnerapp.ContactInput{
		City:      r.City,
		Street:    r.Street,
		House:     r.House,
		Structure: r.Structure,
		Building:  r.Building,
		Apartment: r.Apartment,
		Phone:     r.Phone,
	}
}

// Create stores the authenticated user's delivery contact
func (h *ContactHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), userID, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, contact)
}

// Get returns the authenticated user's delivery contact
func (h *ContactHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	contact, err := h.contactService.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contact)
}

// Update overwrites the authenticated user's delivery contact
func (h *ContactHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Update(c.Request.Context(), userID, req.toInput())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, contact)
}

// Delete removes the authenticated user's delivery contact
func (h *ContactHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.contactService.Delete(c.Request.Context(), userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
