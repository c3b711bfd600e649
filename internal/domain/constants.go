package domain

import "time"

// TimeFormat wire format for booking timestamps
const TimeFormat = time.RFC3339

// Booking validation constants
const (
	// BookingStep шаг сетки бронирования: длительность должна быть кратна 15 минутам
	BookingStep = 15 * time.Minute

	// DefaultItemColor цвет типа предмета, если не задан при создании
	DefaultItemColor = "#ffffff"

	MaxNameLength        = 120
	MaxDomainLength      = 30
	MaxAddressLength     = 200
	MaxDescriptionLength = 500
)

// Object storage content types accepted for uploads
const (
	ContentTypeSVG = "image/svg"
	ContentTypePDF = "application/pdf"
)
