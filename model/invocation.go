package model

// Invocation is the structured command record handed over by the gateway.
type Invocation struct {
	Command    string // top-level command name: "discord" or "twitch"
	Group      string // subcommand group: "offenses", "rules", "users"
	Subcommand string
	Options    Options
	InvokerID  string // the moderator who ran the command
	CreatedAt  int64  // unix milliseconds
}

// Options holds the typed option values of an invocation. An absent key means
// the caller did not supply the option.
type Options map[string]any

func (o Options) String(name string) (string, bool) {
	v, ok := o[name].(string)
	return v, ok
}

func (o Options) Int(name string) (int, bool) {
	switch v := o[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
