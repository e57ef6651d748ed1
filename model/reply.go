package model

// Reply is the structured response a handler produces for the gateway.
// Either Content (a plain message, usually an error) or Embed is set.
type Reply struct {
	Content string
	Embed   *Embed
}

// Embed is the platform-independent shape of a rich reply.
type Embed struct {
	Title         string
	Description   string
	Color         int
	Fields        []EmbedField
	ImageURL      string
	ThumbnailURL  string
	AuthorName    string
	AuthorIconURL string
	FooterText    string
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// ErrorReply wraps a human-readable failure message as a plain reply.
func ErrorReply(msg string) *Reply {
	return &Reply{Content: msg}
}
