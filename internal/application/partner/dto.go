package partner

import (
	"github.com/google/uuid"
	"github.com/marketlink/backend/internal/domain/partner"
)

// ContactInput carries the address fields for create and overwrite
type ContactInput struct {
	City      string
	Street    string
	House     string
	Structure string
	Building  string
	Apartment string
	Phone     string
}

// ContactResponse is the contact representation returned to clients
type ContactResponse struct {
	ID        uuid.UUID `json:"id"`
	City      string    `json:"city"`
	Street    string    `json:"street,omitempty"`
	House     string    `json:"house,omitempty"`
	Structure string    `json:"structure,omitempty"`
	Building  string    `json:"building,omitempty"`
	Apartment string    `json:"apartment,omitempty"`
	Phone     string    `json:"phone"`
}

func (in ContactInput) details() partner.ContactDetails {
	return partner.ContactDetails{
		City:      in.City,
		Street:    in.Street,
		House:     in.House,
		Structure: in.Structure,
		Building:  in.Building,
		Apartment: in.Apartment,
		Phone:     in.Phone,
	}
}

// ToContactResponse maps a contact aggregate to its client representation
func ToContactResponse(contact *partner.Contact) *ContactResponse {
	return &ContactResponse{
		ID:        contact.ID,
		City:      contact.City,
		Street:    contact.Street,
		House:     contact.House,
		Structure: contact.Structure,
		Building:  contact.Building,
		Apartment: contact.Apartment,
		Phone:     contact.Phone,
	}
}
