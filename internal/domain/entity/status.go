// Package entity contains the core business objects of the project.
package entity

// Record status shared by airports, rates and petrol bulk depots.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Availability of a vegetable record.
const (
	AvailabilityAvailable   = "Available"
	AvailabilityUnavailable = "Unavailable"
)
