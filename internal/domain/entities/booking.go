package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BookingStatus represents booking lifecycle status
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
)

// Booking represents a confirmed cleaning appointment
type Booking struct {
	ID            uuid.UUID     `json:"id"`
	CleanerID     int           `json:"cleanerId"`
	CustomerName  string        `json:"customerName"`
	CustomerPhone string        `json:"customerPhone"`
	Address       string        `json:"address"`
	Date          string        `json:"date"`
	TimeSlot      string        `json:"timeSlot"`
	Notes         null.String   `json:"notes,omitempty"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// BookingCreateInput represents input for creating a booking
type BookingCreateInput struct {
	CleanerID     int    `json:"cleanerId" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Date          string `json:"date" binding:"required"`
	TimeSlot      string `json:"timeSlot" binding:"required"`
	Notes         string `json:"notes,omitempty"`
}
