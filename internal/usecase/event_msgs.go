package usecase

// CartChangedMsg is published (best-effort) after every persisted cart
// mutation. Consumers can use it to refresh a view without reloading the
// slot themselves.
type CartChangedMsg struct {
	SessionID  string `json:"sessionId"`
	Op         string `json:"op"` // add | set_quantity | remove | clear
	ItemID     string `json:"itemId,omitempty"`
	Count      int    `json:"count"`
	TotalCents int64  `json:"totalCents"`
}
