package models

import (
	"strings"
	"time"

	"github.com/fiam/gounidecode/unidecode"
	"gorm.io/gorm"
)

type Guest struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:120;not null"`
	Document   *string   `json:"document" gorm:"size:40;uniqueIndex"`
	Phone      string    `json:"phone" gorm:"size:40"`
	Email      string    `json:"email" gorm:"size:120"`
	SearchName string    `json:"-" gorm:"size:120;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeSave keeps the stored search key in sync with the name, so lookups
// can run server-side over the whole table.
func (g *Guest) BeforeSave(tx *gorm.DB) error {
	g.SearchName = NormalizeName(g.Name)
	return nil
}

// NormalizeName folds accents and case so "José" matches "jose".
func NormalizeName(value string) string {
	return strings.ToLower(unidecode.Unidecode(value))
}
