package engine

import (
	"sort"
	"time"

	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/database/models"
)

// Matches reports whether a record satisfies a condition. Pure: it reads only
// the fields already present on the record and never calls the CRM.
func Matches(cond Condition, rec crm.Record) bool {
	switch c := cond.(type) {
	case CategoryCondition:
		value, ok := rec.Field(c.FieldID)
		if !ok {
			return false
		}
		if !categoryMatches(c.CategoryIDs, value) {
			return false
		}
		if len(c.StageIDs) == 0 {
			return true
		}
		stage, ok := rec.Field(crm.FieldStage)
		if !ok {
			return false
		}
		for _, s := range c.StageIDs {
			if s == stage {
				return true
			}
		}
		return false
	case StatusCondition:
		value, ok := rec.Field(c.FieldID)
		if !ok {
			return false
		}
		return value == c.StatusID
	case OwnerCondition:
		inSet := false
		for _, id := range c.UserIDs {
			if id == rec.OwnerID {
				inSet = true
				break
			}
		}
		switch c.Operator {
		case OperatorEquals, OperatorIn:
			return inSet
		case OperatorNotEquals, OperatorNotIn:
			return !inSet
		}
		return false
	case CombinedCondition:
		for _, sub := range c.Conditions {
			if !Matches(sub, rec) {
				return false
			}
		}
		return true
	}
	return false
}

// ScheduleGate decides whether a rule is due at a moment in time. All
// comparisons happen in the configured location, so a rule scheduled for
// "09:00" fires at nine o'clock wall time regardless of server timezone.
type ScheduleGate struct {
	loc *time.Location
}

func NewScheduleGate(loc *time.Location) *ScheduleGate {
	if loc == nil {
		loc = time.UTC
	}
	return &ScheduleGate{loc: loc}
}

// Today returns the calendar date of now in the gate's location, at midnight.
func (g *ScheduleGate) Today(now time.Time) time.Time {
	local := now.In(g.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, g.loc)
}

// Due reports whether the rule's schedule admits the given moment: the ISO
// weekday is in ScheduleDays (nil means every day) and the wall time has
// reached ScheduleTime. Rules with an unparsable schedule time are never due.
func (g *ScheduleGate) Due(rule *models.AssignmentRule, now time.Time) bool {
	local := now.In(g.loc)

	if days := rule.ScheduleDaysList(); days != nil {
		weekday := isoWeekday(local.Weekday())
		found := false
		for _, d := range days {
			if d == weekday {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	at, err := time.Parse("15:04", rule.ScheduleTime)
	if err != nil {
		return false
	}
	minutes := local.Hour()*60 + local.Minute()
	return minutes >= at.Hour()*60+at.Minute()
}

// isoWeekday maps Go's Sunday-based weekday to ISO 8601 (Monday=1..Sunday=7)
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// SelectRuleFor picks the single rule that governs one record: enabled rules
// of the record's entity type that are due now and whose condition matches,
// ordered by ascending priority with ties broken by ascending rule id. Returns
// nil when no rule applies.
func SelectRuleFor(rec crm.Record, entityType models.EntityType, rules []models.AssignmentRule, gate *ScheduleGate, now time.Time) *models.AssignmentRule {
	candidates := make([]*models.AssignmentRule, 0, len(rules))
	for i := range rules {
		rule := &rules[i]
		if !rule.Enabled || rule.EntityType != entityType {
			continue
		}
		if !gate.Due(rule, now) {
			continue
		}
		cond, err := ParseCondition(rule.RuleKind, rule.ConditionConfig)
		if err != nil {
			// Malformed configs are rejected at write time; one slipping
			// through just never matches.
			continue
		}
		if Matches(cond, rec) {
			candidates = append(candidates, rule)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Priority != candidates[j].Priority {
			return candidates[i].Priority < candidates[j].Priority
		}
		return candidates[i].ID.String() < candidates[j].ID.String()
	})
	return candidates[0]
}
