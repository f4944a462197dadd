package models

import "time"

// Driver is a commercial driver on file.
type Driver struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	LicenseNumber     string    `json:"licenseNumber"`
	HomeTerminal      string    `json:"homeTerminal"`
	MainOfficeAddress string    `json:"mainOfficeAddress"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
