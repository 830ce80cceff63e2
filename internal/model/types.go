package model

import "time"

// Artifact slots are a fixed set; there is no dynamic slot creation.
const (
	SlotImage    = "last_image"
	SlotDocument = "last_document"
)

// ArtifactRef points at media a user uploaded, cached for follow-up actions.
type ArtifactRef struct {
	Slot      string
	Path      string
	CreatedAt time.Time
}

// MenuEntry is one selectable row of a menu screen. Target is either
// another menu id (menu_*) or a command token.
type MenuEntry struct {
	Label  string
	Target string
}

// MenuNode is one screen of the navigation tree
type MenuNode struct {
	ID      string
	Title   string
	Body    string
	Entries []MenuEntry
	Parent  string // empty at root
}

// HostStats holds a snapshot of the bot host, shown by /botstats
type HostStats struct {
	CPU        float64
	RAM        float64
	RAMFreeMB  uint64
	RAMTotalMB uint64
	Load1m     float64
	Uptime     uint64
	DiskUsed   float64
	DiskFree   uint64
}
