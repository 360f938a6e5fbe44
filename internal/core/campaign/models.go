package campaign

import (
	"time"

	"github.com/aqarcrm/aqarcrm/internal/core/client"
)

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSending Status = "sending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Campaign is a WhatsApp broadcast to the clients matching Audience.
type Campaign struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Message    string        `json:"message"`
	Audience   client.Filter `json:"audience"`
	Status     Status        `json:"status"`
	Recipients int           `json:"recipients"`
	Sent       int           `json:"sent"`
	Failed     int           `json:"failed"`
	CreatedAt  time.Time     `json:"created_at"`
	SentAt     *time.Time    `json:"sent_at,omitempty"`
}

type CreateCampaignRequest struct {
	Name     string        `json:"name" binding:"required"`
	Message  string        `json:"message" binding:"required"`
	Audience client.Filter `json:"audience"`
}

type UpdateCampaignRequest struct {
	Name     string         `json:"name"`
	Message  string         `json:"message"`
	Audience *client.Filter `json:"audience"`
}

type SendResult struct {
	Campaign   Campaign `json:"campaign"`
	Recipients int      `json:"recipients"`
	Sent       int      `json:"sent"`
	Failed     int      `json:"failed"`
}
