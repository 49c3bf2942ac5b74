package models

import "time"

type Appliance struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" binding:"required"`
	PowerWatts float64   `json:"power_watts"`
	CreatedAt  time.Time `json:"created_at"`
}
