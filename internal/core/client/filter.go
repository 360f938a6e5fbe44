package client

import (
	"github.com/aqarcrm/aqarcrm/internal/core/query"
)

// Filter narrows the client list; unset criteria are ignored.
type Filter struct {
	Search  string `json:"search,omitempty" form:"search"`
	Role    Role   `json:"role,omitempty" form:"role"`
	Status  Status `json:"status,omitempty" form:"status"`
	Tag     string `json:"tag,omitempty" form:"tag"`
	AgentID string `json:"agent_id,omitempty" form:"agent_id"`
}

func (f Filter) Match(c Client) bool {
	if !query.TextMatches(f.Search, c.Name, c.Email, c.Phone, c.SecondaryPhone, c.Address) {
		return false
	}
	if !query.Equals(string(f.Role), string(c.Role)) {
		return false
	}
	if !query.Equals(string(f.Status), string(c.Status)) {
		return false
	}
	if !query.SetContains(c.Tags, f.Tag) {
		return false
	}
	if !query.Equals(f.AgentID, c.AgentID) {
		return false
	}
	return true
}

func (f Filter) Apply(items []Client) []Client {
	out := make([]Client, 0, len(items))
	for _, c := range items {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out
}
