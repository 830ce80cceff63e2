package main

type Config struct {
	BotToken string        `json:"bot_token"`
	Channel  ChannelConfig `json:"channel"`
	Lookup   LookupConfig  `json:"lookup"`
	Media    MediaConfig   `json:"media"`
	Greeting GreetingConfig `json:"greeting"`
	TTL      TTLConfig     `json:"ttl"`
}

// ChannelConfig drives the membership gate. With Require=false the gate
// runs in always-allow mode (local/testing).
type ChannelConfig struct {
	Require  bool   `json:"require"`
	Username string `json:"username"` // e.g. "@my_channel", used for the join link
	ID       int64  `json:"id"`       // numeric chat id used for the membership check
}

type LookupConfig struct {
	TimeoutSeconds int    `json:"timeout_seconds"`
	DNSServer      string `json:"dns_server"`
}

type MediaConfig struct {
	DownloadDir            string `json:"download_dir"`
	DownloadTimeoutSeconds int    `json:"download_timeout_seconds"`
}

type GreetingConfig struct {
	Text         string `json:"text"`
	RevealDelayMs int   `json:"reveal_delay_ms"`
}

// TTLConfig bounds how long per-user state may accumulate. A negative
// value disables the corresponding eviction.
type TTLConfig struct {
	ArtifactMinutes  int `json:"artifact_minutes"`
	SessionIdleHours int `json:"session_idle_hours"`
}
