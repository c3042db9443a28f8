package commands

import "socialgraph/pkg/utils"

// AddFriendshipCommand represents the command to make two people friends
type AddFriendshipCommand struct {
	PersonA string `json:"person_a" validate:"required,max=256"`
	PersonB string `json:"person_b" validate:"required,max=256"`
}

// Validate validates the AddFriendshipCommand
func (c AddFriendshipCommand) Validate() error {
	return utils.ValidateStruct(c)
}
