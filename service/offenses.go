package service

import (
	"fmt"
	"strings"

	"github.com/wizo06/offense-logger/identity"
	"github.com/wizo06/offense-logger/model"
	"github.com/wizo06/offense-logger/storage"
	"github.com/wizo06/offense-logger/utils"
)

func (s *Service) offensesCreate(ad *platformAdapter, inv model.Invocation) *model.Reply {
	offenderOpt, ok := inv.Options.String("offender")
	if !ok {
		return model.ErrorReply(missingOption("offender").Error())
	}
	punishment, ok := inv.Options.String("punishment")
	if !ok {
		return model.ErrorReply(missingOption("punishment").Error())
	}
	ruleNumber, ok := inv.Options.Int("rule")
	if !ok {
		return model.ErrorReply(missingOption("rule").Error())
	}
	if _, ok := s.catalog.Lookup(ad.platform, ruleNumber); !ok {
		return model.ErrorReply(unknownRule(ruleNumber).Error())
	}
	channelID, ok := inv.Options.String("channel")
	if ad.needsChannel && !ok {
		return model.ErrorReply(missingOption("channel").Error())
	}

	// The offense must not be written against an unverifiable identity.
	profile, err := ad.resolver.Resolve(ad.offenderKey(offenderOpt), true)
	if err != nil {
		return model.ErrorReply(err.Error())
	}

	notes, _ := inv.Options.String("notes")
	screenshotURL, _ := inv.Options.String("screenshot")
	reporterID, ok := inv.Options.String("reporter")
	if !ok {
		reporterID = inv.InvokerID
	}

	offense := model.Offense{
		Timestamp:     utils.NormalizeMillis(inv.CreatedAt),
		OffenderID:    profile.ID,
		ChannelID:     channelID,
		Punishment:    punishment,
		ReporterID:    reporterID,
		Rule:          ruleNumber,
		Notes:         notes,
		ScreenshotURL: screenshotURL,
	}

	doc, err := storage.EncodeDoc(offense)
	if err != nil {
		s.log.Error().Err(err).Msg("encoding offense")
		return model.ErrorReply(storage.ErrStore.Error())
	}
	created, err := s.store.Create(ad.platform.OffenseCollection(), doc)
	if err != nil {
		return model.ErrorReply(err.Error())
	}
	if err := storage.DecodeInto(created, &offense); err != nil {
		s.log.Error().Err(err).Msg("decoding offense")
		return model.ErrorReply(storage.ErrStore.Error())
	}

	// Best effort; the ledger write above is already committed.
	ad.resolver.RefreshCache(profile)

	return s.offenseReply(ad, offense, profile)
}

func (s *Service) offensesGet(ad *platformAdapter, inv model.Invocation) *model.Reply {
	id, ok := inv.Options.String("id")
	if !ok {
		return model.ErrorReply(missingOption("id").Error())
	}

	doc, err := s.store.Get(ad.platform.OffenseCollection(), strings.TrimSpace(id))
	if err != nil {
		return model.ErrorReply(err.Error())
	}
	var offense model.Offense
	if err := storage.DecodeInto(doc, &offense); err != nil {
		s.log.Error().Err(err).Msg("decoding offense")
		return model.ErrorReply(storage.ErrStore.Error())
	}

	// Lenient: a directory outage never blocks reading the ledger.
	profile, _ := ad.resolver.Resolve(identity.Key{ID: offense.OffenderID}, false)

	return s.offenseReply(ad, offense, profile)
}

func (s *Service) offensesUpdate(ad *platformAdapter, inv model.Invocation) *model.Reply {
	id, ok := inv.Options.String("id")
	if !ok {
		return model.ErrorReply(missingOption("id").Error())
	}

	// Sparse mask: only options the caller actually supplied are written.
	mask := storage.Document{}
	if offenderOpt, ok := inv.Options.String("offender"); ok {
		profile, err := ad.resolver.Resolve(ad.offenderKey(offenderOpt), true)
		if err != nil {
			return model.ErrorReply(err.Error())
		}
		mask["offenderId"] = profile.ID
	}
	if punishment, ok := inv.Options.String("punishment"); ok {
		mask["punishment"] = punishment
	}
	if channelID, ok := inv.Options.String("channel"); ok {
		mask["channelId"] = channelID
	}
	if ruleNumber, ok := inv.Options.Int("rule"); ok {
		if _, ok := s.catalog.Lookup(ad.platform, ruleNumber); !ok {
			return model.ErrorReply(unknownRule(ruleNumber).Error())
		}
		mask["rule"] = ruleNumber
	}
	if notes, ok := inv.Options.String("notes"); ok {
		mask["notes"] = notes
	}
	if screenshotURL, ok := inv.Options.String("screenshot"); ok {
		mask["screenshotUrl"] = screenshotURL
	}
	if reporterID, ok := inv.Options.String("reporter"); ok {
		mask["reporterId"] = reporterID
	}

	updated, err := s.store.Update(ad.platform.OffenseCollection(), strings.TrimSpace(id), mask)
	if err != nil {
		return model.ErrorReply(err.Error())
	}
	var offense model.Offense
	if err := storage.DecodeInto(updated, &offense); err != nil {
		s.log.Error().Err(err).Msg("decoding offense")
		return model.ErrorReply(storage.ErrStore.Error())
	}

	// Re-resolve the possibly changed offender; refreshes the cache on a
	// live hit.
	profile, _ := ad.resolver.Resolve(identity.Key{ID: offense.OffenderID}, false)

	return s.offenseReply(ad, offense, profile)
}

func (s *Service) offensesDelete(ad *platformAdapter, inv model.Invocation) *model.Reply {
	id, ok := inv.Options.String("id")
	if !ok {
		return model.ErrorReply(missingOption("id").Error())
	}
	if err := s.store.Delete(ad.platform.OffenseCollection(), strings.TrimSpace(id)); err != nil {
		return model.ErrorReply(err.Error())
	}
	return &model.Reply{Content: "✅ Deleted"}
}

func (s *Service) offensesList(ad *platformAdapter, inv model.Invocation) *model.Reply {
	filter := map[string]any{}
	if offenderOpt, ok := inv.Options.String("offender"); ok {
		key := ad.offenderKey(offenderOpt)
		if key.ID == "" {
			// Name-given filters must resolve before the ledger is queried.
			profile, err := ad.resolver.Resolve(key, true)
			if err != nil {
				return model.ErrorReply(err.Error())
			}
			key.ID = profile.ID
		}
		filter["offenderId"] = key.ID
	}

	docs, err := s.store.List(ad.platform.OffenseCollection(), filter,
		storage.Sort{Field: "timestamp", Descending: true}, pageSize)
	if err != nil {
		return model.ErrorReply(err.Error())
	}

	embed := &model.Embed{
		Title: strings.ToUpper(string(ad.platform)) + " OFFENSES",
		Color: ad.platform.Color(),
	}
	for _, doc := range docs {
		var offense model.Offense
		if err := storage.DecodeInto(doc, &offense); err != nil {
			s.log.Error().Err(err).Msg("decoding offense")
			return model.ErrorReply(storage.ErrStore.Error())
		}
		profile, _ := ad.resolver.Resolve(identity.Key{ID: offense.OffenderID}, false)
		embed.Fields = append(embed.Fields, model.EmbedField{
			Name:  "Offense ID: " + offense.ID,
			Value: s.offenseLine(ad, offense, profile),
		})
	}

	return &model.Reply{Embed: embed}
}

func (s *Service) offenseLine(ad *platformAdapter, offense model.Offense, profile *model.Profile) string {
	ruleText := fmt.Sprintf("rule %d", offense.Rule)
	if rule, ok := s.catalog.Lookup(ad.platform, offense.Rule); ok {
		ruleText = fmt.Sprintf("%d. %s", rule.Number, rule.ShortName)
	}
	return fmt.Sprintf("Offender: %s | %s\nReported by: <@%s> | Time of report: %s",
		ad.userRef(offense.OffenderID, profile), ruleText,
		offense.ReporterID, utils.FormatTimestamp(offense.Timestamp))
}
