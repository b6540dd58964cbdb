package room

import "time"

// Room is a schedulable location. Its name is its identity: there is no
// surrogate id, and names are case-sensitive and unique.
type Room struct {
	RoomName string `gorm:"column:room_name;type:varchar(100);primaryKey" json:"roomName"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Room) TableName() string {
	return "clinical.rooms"
}

// Equal reports identity equality, which for rooms is equality of the name.
func (r *Room) Equal(other *Room) bool {
	return other != nil && r.RoomName == other.RoomName
}

type CreateRoomCommand struct {
	RoomName string
}
