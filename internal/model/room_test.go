package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomPlayerAccessors(t *testing.T) {
	room := &Room{Code: "ROOM1"}

	_, ok := room.GetPlayer("alice@example.com")
	assert.False(t, ok)

	room.SetPlayer(Player{Email: "alice@example.com", State: StateAlive})
	player, ok := room.GetPlayer("alice@example.com")
	assert.True(t, ok)
	assert.Equal(t, Identity("alice@example.com"), player.Email)

	// Replacing updates in place
	player.State = StateDead
	room.SetPlayer(player)
	updated, _ := room.GetPlayer("alice@example.com")
	assert.Equal(t, StateDead, updated.State)

	assert.True(t, room.RemovePlayer("alice@example.com"))
	assert.False(t, room.RemovePlayer("alice@example.com"))
}

func TestRoomAlivePlayers(t *testing.T) {
	room := &Room{}
	room.SetPlayer(Player{Email: "alice@example.com", State: StateAlive})
	room.SetPlayer(Player{Email: "bob@example.com", State: StateDead})
	room.SetPlayer(Player{Email: "carol@example.com", State: StateAlive})

	alive := room.AlivePlayers()
	assert.Len(t, alive, 2)
	assert.Contains(t, alive, Identity("alice@example.com"))
	assert.Contains(t, alive, Identity("carol@example.com"))

	assert.Len(t, room.PlayerIdentities(), 3)
}
