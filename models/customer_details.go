package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CustomerDetails is a saved shipping address owned by one user.
type CustomerDetails struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      int                `bson:"userId" json:"userId"`
	AddressType string             `bson:"addressType" json:"addressType"`
	Name        string             `bson:"name" json:"name"`
	Phone       string             `bson:"phone" json:"phone"`
	Address     string             `bson:"address" json:"address"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state" json:"state"`
}

type CustomerDetailsRequest struct {
	AddressType string `json:"addressType"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
}

func NewCustomerDetails(userID int, req CustomerDetailsRequest) CustomerDetails {
	return CustomerDetails{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		AddressType: req.AddressType,
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
	}
}

// Apply overwrites the fields that are non-empty in req. Empty fields never
// clear a stored value.
func (d *CustomerDetails) Apply(req CustomerDetailsRequest) {
	overwrite(&d.AddressType, req.AddressType)
	overwrite(&d.Name, req.Name)
	overwrite(&d.Phone, req.Phone)
	overwrite(&d.Address, req.Address)
	overwrite(&d.City, req.City)
	overwrite(&d.State, req.State)
}

func overwrite(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
