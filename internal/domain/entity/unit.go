package entity

import (
	"time"
)

type Unit struct {
	ID        string    `json:"id" firestore:"id"`
	OwnerID   string    `json:"owner_id" firestore:"ownerId"`
	Address1  string    `json:"unit_address_1" firestore:"address1"`
	Address2  string    `json:"unit_address_2,omitempty" firestore:"address2"`
	City      string    `json:"unit_city,omitempty" firestore:"city"`
	State     string    `json:"unit_state,omitempty" firestore:"state"`
	ZipCode   string    `json:"unit_zip_code,omitempty" firestore:"zipCode"`
	Slug      string    `json:"slug" firestore:"slug"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at,omitempty" firestore:"updatedAt"`
}
