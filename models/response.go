package models

import "time"

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Redis     string    `json:"redis"`
	Timestamp time.Time `json:"timestamp"`
}
