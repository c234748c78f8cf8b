package news

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryTransfers     Category = "transfers"
	CategoryLocal         Category = "local"
	CategoryInternational Category = "international"
	CategoryAcademy       Category = "academy"
)

func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryTransfers, CategoryLocal, CategoryInternational, CategoryAcademy:
		return Category(s)
	default:
		return ""
	}
}

type Item struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Source    string    `json:"source"`
	Category  Category  `json:"category"`
	CreatedBy uuid.UUID `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type ItemInput struct {
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Source   string    `json:"source"`
	Category string    `json:"category"`
}
