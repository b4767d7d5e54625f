package models

import (
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedRooms creates the fixed 22-room catalog on first run. Rooms are never
// deleted, so a non-empty table means the catalog is already in place.
func SeedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Room{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var rooms []Room
	add := func(from, to int, roomType, rate string) {
		nightly := decimal.RequireFromString(rate)
		for n := from; n <= to; n++ {
			rooms = append(rooms, Room{Number: strconv.Itoa(n), RoomType: roomType, Rate: nightly})
		}
	}
	add(101, 105, "Single", "110.00")
	add(106, 115, "Double", "200.00")
	add(116, 120, "Triple", "290.00")
	add(121, 122, "Quad", "360.00")

	return db.Create(&rooms).Error
}
