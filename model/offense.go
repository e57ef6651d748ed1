package model

// Offense is a single logged rule violation. One document per offense, stored
// in the platform's offense collection. Timestamps are unix milliseconds.
type Offense struct {
	ID            string `json:"_id"`
	Timestamp     int64  `json:"timestamp"`
	OffenderID    string `json:"offenderId"`
	ChannelID     string `json:"channelId,omitempty"`
	Punishment    string `json:"punishment"`
	ReporterID    string `json:"reporterId"`
	Rule          int    `json:"rule"`
	Notes         string `json:"notes,omitempty"`
	ScreenshotURL string `json:"screenshotUrl,omitempty"`
}
