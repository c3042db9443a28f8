package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPerson(t *testing.T) {
	person := NewPerson("Alex")

	assert.Equal(t, "Alex", person.Name())
	assert.Empty(t, person.Friends())
	assert.Equal(t, 0, person.FriendCount())
}

func TestNewPerson_AcceptsAnyName(t *testing.T) {
	assert.Equal(t, "", NewPerson("").Name())
	assert.Equal(t, "  spaced  ", NewPerson("  spaced  ").Name())
}

func TestPerson_AddFriend(t *testing.T) {
	person := NewPerson("Alex")

	assert.True(t, person.AddFriend("Jordan"))
	assert.True(t, person.AddFriend("Morgan"))
	assert.False(t, person.AddFriend("Jordan"), "second add is a no-op")

	assert.Equal(t, []string{"Jordan", "Morgan"}, person.Friends())
	assert.Equal(t, 2, person.FriendCount())
	assert.True(t, person.IsFriendsWith("Jordan"))
	assert.False(t, person.IsFriendsWith("Taylor"))
}

func TestPerson_FriendsReturnsCopy(t *testing.T) {
	person := NewPerson("Alex")
	person.AddFriend("Jordan")

	friends := person.Friends()
	friends[0] = "Mallory"

	assert.Equal(t, []string{"Jordan"}, person.Friends())
}
