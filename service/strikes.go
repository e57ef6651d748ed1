package service

import (
	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/storage"
)

// strikeCount returns the number of stored offenses matching the offender and
// rule on the adapter's platform.
func (s *Service) strikeCount(ad *platformAdapter, offenderID string, ruleNumber int) (int, error) {
	docs, err := s.store.List(ad.platform.OffenseCollection(), map[string]any{
		"offenderId": offenderID,
		"rule":       ruleNumber,
	}, storage.Sort{}, aggregationLimit)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

// StrikeLabel maps a strike count to its categorical label.
func StrikeLabel(count int) string {
	switch {
	case count <= 0:
		return ""
	case count == 1:
		return "ONE STRIKE"
	case count == 2:
		return "TWO STRIKES"
	case count == 3:
		return "THREE STRIKES"
	default:
		return "FOUR OR MORE STRIKES"
	}
}

// strikeLabelFor is the lookup used while assembling replies; counting
// failures degrade to an empty label rather than failing the command.
func (s *Service) strikeLabelFor(ad *platformAdapter, offense model.Offense) string {
	count, err := s.strikeCount(ad, offense.OffenderID, offense.Rule)
	if err != nil {
		s.log.Warn().Err(err).Str("offender", offense.OffenderID).Msg("strike count failed")
		return ""
	}
	return StrikeLabel(count)
}
