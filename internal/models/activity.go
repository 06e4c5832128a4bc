package models

import "time"

// Activity actions.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionExport = "export"
	ActionLogin  = "login"
	ActionLogout = "logout"
)

// ActivityCap is the number of activity entries retained; older entries are
// discarded silently.
const ActivityCap = 50

// ActivityLog is one entry of the append-only audit trail, newest first.
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	ItemID    string    `json:"item_id,omitempty"`
	ItemName  string    `json:"item_name,omitempty"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
