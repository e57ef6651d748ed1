package service

import "github.com/wizo06/offense-logger/model"

// Dispatch routes an invocation to its handler and returns the handler's
// reply. An unmatched (command, group, subcommand) triple is a silent no-op:
// nil is returned and nothing runs. Unmatched commands never error.
func (s *Service) Dispatch(inv model.Invocation) *model.Reply {
	ad, handler := s.route(inv)
	if handler == nil {
		return nil
	}
	return handler(ad, inv)
}

// Recognized reports whether the invocation routes to a handler, without
// running it. The gateway checks this before deferring a response, so an
// unmatched invocation never leaves a deferred reply hanging.
func (s *Service) Recognized(inv model.Invocation) bool {
	_, handler := s.route(inv)
	return handler != nil
}

func (s *Service) route(inv model.Invocation) (*platformAdapter, func(*platformAdapter, model.Invocation) *model.Reply) {
	var platform model.Platform
	switch inv.Command {
	case "discord":
		platform = model.PlatformDiscord
	case "twitch":
		platform = model.PlatformTwitch
	default:
		return nil, nil
	}
	ad := s.platforms[platform]

	switch {
	case inv.Group == "offenses" && inv.Subcommand == "list":
		return ad, s.offensesList
	case inv.Group == "offenses" && inv.Subcommand == "get":
		return ad, s.offensesGet
	case inv.Group == "offenses" && inv.Subcommand == "create":
		return ad, s.offensesCreate
	case inv.Group == "offenses" && inv.Subcommand == "update":
		return ad, s.offensesUpdate
	case inv.Group == "offenses" && inv.Subcommand == "delete":
		return ad, s.offensesDelete
	case inv.Group == "rules" && inv.Subcommand == "list":
		return ad, func(ad *platformAdapter, _ model.Invocation) *model.Reply { return s.rulesList(ad) }
	case inv.Group == "users" && inv.Subcommand == "list":
		return ad, func(ad *platformAdapter, _ model.Invocation) *model.Reply { return s.usersList(ad) }
	case inv.Group == "users" && inv.Subcommand == "get":
		return ad, s.usersGet
	}

	return nil, nil
}
