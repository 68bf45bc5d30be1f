package models

import "time"

type Provider struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	FirstName         string    `json:"first_name" bson:"firstName"`
	LastName          string    `json:"last_name" bson:"lastName"`
	Email             string    `json:"email" bson:"email"`
	PhoneNumber       string    `json:"phone_number" bson:"phoneNumber"`
	Specialization    string    `json:"specialization" bson:"specialization"`
	LicenseNumber     string    `json:"license_number" bson:"licenseNumber"`
	YearsOfExperience int       `json:"years_of_experience" bson:"yearsOfExperience"`
	Street            string    `json:"street" bson:"street"`
	City              string    `json:"city" bson:"city"`
	State             string    `json:"state" bson:"state"`
	Zip               string    `json:"zip" bson:"zip"`
	Status            string    `json:"status" bson:"status"`
	CreatedAt         time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt         time.Time `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}
