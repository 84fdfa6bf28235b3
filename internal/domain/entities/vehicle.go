package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Vehicle belongs to a Client. ClientID is empty only for detached rows.
type Vehicle struct {
	ID        string
	Make      string
	Model     string
	Year      int
	Plate     string
	ClientID  string
	CreatedAt time.Time
}

// ServiceRecord is a free-text maintenance history entry appended to a vehicle.
type ServiceRecord struct {
	ID          string
	VehicleID   string
	Description string
	Value       *decimal.Decimal
	PerformedAt time.Time
}

// Old (ABC1234) and Mercosul (ABC1D23) plate formats.
var platePattern = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

func NormalizePlate(raw string) string {
	p := strings.ToUpper(strings.TrimSpace(raw))
	return strings.ReplaceAll(p, "-", "")
}

func IsValidPlate(raw string) bool {
	return platePattern.MatchString(NormalizePlate(raw))
}
