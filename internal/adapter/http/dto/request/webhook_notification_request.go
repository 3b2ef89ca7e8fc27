package request

import "encoding/json"

// WebhookNotificationRequest is the provider notification envelope. Only
// `type` and `data.id` are consumed; everything else the provider sends is
// ignored. Data.ID is a json.Number because the provider is inconsistent
// about quoting ids.

type WebhookNotificationRequest struct {
	Type string                  `json:"type"`
	Data WebhookNotificationData `json:"data"`
}

type WebhookNotificationData struct {
	ID json.Number `json:"id"`
}
