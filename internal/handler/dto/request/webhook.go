package request

// WebhookNotification is the gateway's IPN payload. Only payment topics
// carry anything we act on; the rest are acknowledged and dropped.
type WebhookNotification struct {
	Type   string      `json:"type"`
	Action string      `json:"action,omitempty"`
	Data   WebhookData `json:"data"`
}

type WebhookData struct {
	ID string `json:"id"`
}

func (n WebhookNotification) IsPayment() bool {
	return n.Type == "payment"
}
