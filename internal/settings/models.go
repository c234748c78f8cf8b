package settings

import "time"

// Setting is a single platform flag.
type Setting struct {
	Key       string    `json:"key"`
	Value     bool      `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Platform flag keys.
const (
	KeyTestMode          = "test_mode"
	KeyAllowRegistration = "allow_registration"
	KeyAutoVerify        = "auto_verify"
	KeyMaintenanceMode   = "maintenance_mode"
)

// Defaults are the values a flag takes before an admin ever touches it.
var Defaults = map[string]bool{
	KeyTestMode:          false,
	KeyAllowRegistration: true,
	KeyAutoVerify:        false,
	KeyMaintenanceMode:   false,
}

// IsKnownKey reports whether a key belongs to the closed flag set.
func IsKnownKey(key string) bool {
	_, ok := Defaults[key]
	return ok
}
