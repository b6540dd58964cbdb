package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomIdentityIsItsName(t *testing.T) {
	dermatology := &Room{RoomName: "Dermatology"}

	assert.True(t, dermatology.Equal(&Room{RoomName: "Dermatology"}))
	assert.False(t, dermatology.Equal(&Room{RoomName: "Oncology"}))
	// Names are case-sensitive.
	assert.False(t, dermatology.Equal(&Room{RoomName: "dermatology"}))
	assert.False(t, dermatology.Equal(nil))
}
