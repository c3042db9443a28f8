package commands

import "socialgraph/pkg/utils"

// AddPersonCommand represents the command to register a new person
type AddPersonCommand struct {
	Name string `json:"name" validate:"required,max=256"`
}

// Validate validates the AddPersonCommand
func (c AddPersonCommand) Validate() error {
	return utils.ValidateStruct(c)
}
