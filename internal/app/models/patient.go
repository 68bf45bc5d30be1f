package models

import "time"

type Patient struct {
	ID                           string    `json:"id" bson:"_id,omitempty"`
	UserID                       string    `json:"user_id" bson:"userId"`
	FirstName                    string    `json:"first_name" bson:"firstName"`
	LastName                     string    `json:"last_name" bson:"lastName"`
	Email                        string    `json:"email" bson:"email"`
	PhoneNumber                  string    `json:"phone_number" bson:"phoneNumber"`
	DateOfBirth                  string    `json:"date_of_birth" bson:"dateOfBirth"`
	Gender                       string    `json:"gender" bson:"gender"`
	Street                       string    `json:"street" bson:"street"`
	City                         string    `json:"city" bson:"city"`
	State                        string    `json:"state" bson:"state"`
	Zip                          string    `json:"zip" bson:"zip"`
	EmergencyContactName         string    `json:"emergency_contact_name,omitempty" bson:"emergencyContactName,omitempty"`
	EmergencyContactPhone        string    `json:"emergency_contact_phone,omitempty" bson:"emergencyContactPhone,omitempty"`
	EmergencyContactRelationship string    `json:"emergency_contact_relationship,omitempty" bson:"emergencyContactRelationship,omitempty"`
	InsuranceProvider            string    `json:"insurance_provider,omitempty" bson:"insuranceProvider,omitempty"`
	PolicyNumber                 string    `json:"policy_number,omitempty" bson:"policyNumber,omitempty"`
	MedicalHistory               []string  `json:"medical_history,omitempty" bson:"medicalHistory,omitempty"`
	Status                       string    `json:"status" bson:"status"`
	LastLogin                    string    `json:"last_login,omitempty" bson:"lastLogin,omitempty"`
	CreatedAt                    time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt                    time.Time `json:"updated_at,omitempty" bson:"updatedAt,omitempty"`
}
