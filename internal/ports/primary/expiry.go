package primary

import "context"

// ExpiryService defines the primary port used by the expiry notifier.
type ExpiryService interface {
	// CheckExpiries returns an alert for every active vehicle document whose
	// remaining days have crossed a configured threshold.
	CheckExpiries(ctx context.Context) ([]*ExpiryAlert, error)

	// GetDocumentHorizons returns the remaining days of each document of a vehicle.
	GetDocumentHorizons(ctx context.Context, vehicleID string) ([]*DocumentHorizon, error)
}

// ExpiryAlert describes a document that needs a notification.
type ExpiryAlert struct {
	VehicleID     string
	HullNumber    string
	PlateNumber   string
	Document      string // STNK or KIR
	ExpiryDate    string
	DaysRemaining int
	Threshold     int
}

// DocumentHorizon is the remaining validity of one document.
// DaysRemaining is 999 when the vehicle has no date on file.
type DocumentHorizon struct {
	Document      string
	ExpiryDate    string
	DaysRemaining int
}
