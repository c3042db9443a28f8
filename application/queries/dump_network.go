package queries

import (
	"time"

	"socialgraph/domain/core/aggregates"
	"socialgraph/pkg/utils"
)

// DumpNetworkQuery represents a query for every person and their friends
type DumpNetworkQuery struct {
	// Offset and Limit select a window of people in insertion order.
	// A zero Limit returns everyone from Offset onwards.
	Offset int `validate:"min=0"`
	Limit  int `validate:"min=0"`
}

// Validate validates the DumpNetworkQuery
func (q DumpNetworkQuery) Validate() error {
	return utils.ValidateStruct(q)
}

// DumpNetworkResult represents the result of dumping the network
type DumpNetworkResult struct {
	NetworkID       string                  `json:"network_id"`
	People          []aggregates.Connection `json:"people"`
	PersonCount     int                     `json:"person_count"`
	FriendshipCount int                     `json:"friendship_count"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}
