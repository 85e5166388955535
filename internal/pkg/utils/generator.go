package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateObjectName(prefix string, patientID int, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%d_%s%s", prefix, patientID, timestamp, fileExtension)
}
