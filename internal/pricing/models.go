package pricing

import (
	"github.com/google/uuid"
)

type Period string

const (
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodMonth, PeriodYear:
		return Period(s)
	default:
		return ""
	}
}

// Plan is a subscription tier offered to one role. Price is stored in the
// currency's minor unit (kobo for NGN).
type Plan struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency"`
	Period      Period    `json:"period"`
	Features    []string  `json:"features"`
	Recommended bool      `json:"recommended"`
}

type PlanInput struct {
	Role        string   `json:"role"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Currency    string   `json:"currency"`
	Period      string   `json:"period"`
	Features    []string `json:"features"`
	Recommended bool     `json:"recommended"`
}
