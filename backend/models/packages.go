package models

import "gorm.io/gorm"

// Package is a purchasable bundle shown on the pricing page.
type Package struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int    `json:"price_cents"`
	Features    string `json:"features"` // newline-separated bullet list
}
