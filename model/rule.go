package model

// Rule is one entry of the preloaded rule catalog. Read-only after startup.
type Rule struct {
	Number      int    `mapstructure:"number"`
	ShortName   string `mapstructure:"shortName"`
	Description string `mapstructure:"description"`
	Bannable    bool   `mapstructure:"bannable"`
}
