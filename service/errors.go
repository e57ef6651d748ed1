package service

import "fmt"

// ValidationError reports a missing or invalid command option.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

func missingOption(name string) ValidationError {
	return ValidationError(fmt.Sprintf("missing required option: %s", name))
}

func unknownRule(number int) ValidationError {
	return ValidationError(fmt.Sprintf("rule %d does not exist on this platform", number))
}
