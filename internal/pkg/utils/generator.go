package utils

import (
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateWizardID() string {
	return uuid.New().String()
}

func GenerateRecordID() string {
	return uuid.New().String()
}
