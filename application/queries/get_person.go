package queries

import "socialgraph/pkg/utils"

// GetPersonQuery represents a query to get a single person and their friends
type GetPersonQuery struct {
	Name string `validate:"required"`
}

// Validate validates the GetPersonQuery
func (q GetPersonQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// GetPersonResult represents the result of getting a person
type GetPersonResult struct {
	Name        string   `json:"name"`
	Friends     []string `json:"friends"`
	FriendCount int      `json:"friend_count"`
}
