package types

// Delivery is the metadata GitHub attaches to every webhook delivery.
type Delivery struct {
	ID    string // X-GitHub-Delivery header, unique per delivery
	Event string // X-GitHub-Event header, e.g. "push" or "ping"
}

// PingEvent is the payload GitHub sends when a webhook is first configured,
// to confirm the endpoint is reachable and the secret matches.
type PingEvent struct {
	Zen    string `json:"zen"`
	HookID int64  `json:"hook_id"`
}
