package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Room struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Number    string          `json:"number" gorm:"size:8;uniqueIndex;not null"`
	RoomType  string          `json:"roomType" gorm:"size:20;not null;default:Single"`
	Rate      decimal.Decimal `json:"rate" gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
