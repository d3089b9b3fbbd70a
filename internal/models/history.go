package models

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is a stored report.
type AnalysisRecord struct {
	ID         uuid.UUID       `json:"id"`
	FoodName   string          `json:"food_name"`
	FoodWeight string          `json:"food_weight"`
	Identified string          `json:"identified_name"`
	Filename   string          `json:"filename"`
	Report     *AnalysisReport `json:"report"`
	CreatedAt  time.Time       `json:"created_at"`
}
