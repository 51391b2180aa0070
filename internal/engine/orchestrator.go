package engine

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/crm"
	"duty-assignment-backend/internal/database/models"
	"duty-assignment-backend/internal/logger"
)

// DutyProvider resolves who is on duty for a calendar date.
type DutyProvider interface {
	DutyUserIDs(ctx context.Context, date time.Time) ([]int64, error)
}

// RuleSource lists the enabled assignment rules with their distributions.
type RuleSource interface {
	EnabledRules(ctx context.Context) ([]models.AssignmentRule, error)
}

// HistoryAppender records one applied ownership change.
type HistoryAppender interface {
	Append(ctx context.Context, entry *models.AssignmentHistory) error
}

// NameResolver maps CRM user ids to display names for run output. Missing ids
// resolve to an empty string.
type NameResolver interface {
	DisplayNames(ctx context.Context, ids []int64) map[int64]string
}

// Orchestrator drives batch assignment runs: it walks the enabled rules in
// deterministic order, matches CRM records against each rule's condition,
// draws new owners from the duty-restricted distribution, and applies and
// records the changes.
type Orchestrator struct {
	crm          crm.Client
	duty         DutyProvider
	rules        RuleSource
	history      HistoryAppender
	names        NameResolver
	gate         *ScheduleGate
	rng          RNG
	workers      int
	experimental bool
	log          *logger.Logger

	// relatedLocks serializes writes per related record: two deals sharing a
	// company must not race on the company's owner.
	relatedLocks sync.Map
}

// Options configures an Orchestrator.
type Options struct {
	Crm          crm.Client
	Duty         DutyProvider
	Rules        RuleSource
	History      HistoryAppender
	Names        NameResolver
	Gate         *ScheduleGate
	Rng          RNG
	Workers      int
	Experimental bool
}

func NewOrchestrator(opts Options) *Orchestrator {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	rng := opts.Rng
	if rng == nil {
		rng = NewLockedRNG(time.Now().UnixNano())
	}
	gate := opts.Gate
	if gate == nil {
		gate = NewScheduleGate(time.UTC)
	}
	return &Orchestrator{
		crm:          opts.Crm,
		duty:         opts.Duty,
		rules:        opts.Rules,
		history:      opts.History,
		names:        opts.Names,
		gate:         gate,
		rng:          rng,
		workers:      workers,
		experimental: opts.Experimental,
		log:          logger.WithComponent("engine"),
	}
}

// RunOptions parameterizes one batch run.
type RunOptions struct {
	Date   time.Time
	Mode   RunMode
	Source models.AssignmentSource
	// EnforceGate skips rules whose schedule does not admit Now. Scheduled
	// runs enforce it; manual runs process every enabled rule.
	EnforceGate bool
	Now         time.Time
	// Since, when set with EnforceGate, additionally skips rules that were
	// already due at that earlier moment of the same day. Interval schedulers
	// pass their previous tick so each rule fires once per day.
	Since time.Time
}

// Run executes a batch run asynchronously and streams its progress. The
// returned channel closes after the terminal complete or error event. The run
// belongs to the passed context, not to any one consumer: a consumer that stops
// reading must keep draining (or cancel ctx). The run itself never aborts just
// because nobody is listening.
func (o *Orchestrator) Run(ctx context.Context, opts RunOptions) <-chan ProgressEvent {
	events := make(chan ProgressEvent, 16)
	go func() {
		defer close(events)
		o.run(ctx, opts, events)
	}()
	return events
}

// RunSync executes a batch run and returns its summary, discarding
// intermediate progress. Used by the scheduler and non-streaming callers.
func (o *Orchestrator) RunSync(ctx context.Context, opts RunOptions) (*RunSummary, error) {
	summary := &RunSummary{Date: opts.Date.Format("2006-01-02"), Mode: opts.Mode}
	for ev := range o.Run(ctx, opts) {
		switch ev.Type {
		case EventStart:
			summary.TotalRules = ev.TotalRules
		case EventProgress:
			summary.ProcessedRules = ev.ProcessedRules
			summary.UpdatedEntities = ev.UpdatedCount
		case EventComplete:
			summary.UpdatedEntities = ev.UpdatedEntities
			summary.Errors = ev.Errors
		case EventError:
			return nil, apperrors.NewConfigurationError(ev.Error)
		}
	}
	return summary, nil
}

func (o *Orchestrator) run(ctx context.Context, opts RunOptions, events chan<- ProgressEvent) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	mode := opts.Mode
	if mode == "" {
		mode = ModeApply
	}

	dutyIDs, err := o.duty.DutyUserIDs(ctx, opts.Date)
	if err != nil {
		events <- ProgressEvent{Type: EventError, Error: err.Error()}
		return
	}
	if len(dutyIDs) == 0 {
		events <- ProgressEvent{Type: EventError, Error: apperrors.ErrNoDutyRoster.Error()}
		return
	}
	onDuty := make(map[int64]bool, len(dutyIDs))
	for _, id := range dutyIDs {
		onDuty[id] = true
	}

	rules, err := o.rules.EnabledRules(ctx)
	if err != nil {
		events <- ProgressEvent{Type: EventError, Error: err.Error()}
		return
	}
	sortRules(rules)

	events <- ProgressEvent{
		Type:          EventStart,
		Date:          opts.Date.Format("2006-01-02"),
		TotalRules:    len(rules),
		DutyUserIDs:   dutyIDs,
		DutyUserNames: o.resolveNames(ctx, dutyIDs),
	}

	updated := 0
	processed := 0
	var runErrors []string

	for i := range rules {
		rule := &rules[i]
		if ctx.Err() != nil {
			events <- ProgressEvent{Type: EventError, Error: apperrors.ErrRunCancelled.Error()}
			return
		}

		events <- ProgressEvent{
			Type:       EventProgress,
			RuleID:     rule.ID.String(),
			RuleName:   rule.Name,
			EntityType: string(rule.EntityType),
			Status:     RuleProcessing,
		}
		processed++

		if skip := o.ruleSkipReason(rule, onDuty, opts.EnforceGate, now, opts.Since); skip != "" {
			events <- ProgressEvent{
				Type:           EventProgress,
				RuleID:         rule.ID.String(),
				RuleName:       rule.Name,
				EntityType:     string(rule.EntityType),
				Status:         RuleSkipped,
				Reason:         skip,
				UpdatedCount:   updated,
				ProcessedRules: processed,
			}
			continue
		}

		decisions, err := o.collectDecisions(ctx, rule, onDuty)
		if err != nil {
			msg := fmt.Sprintf("rule %s: %v", rule.Name, err)
			runErrors = append(runErrors, msg)
			o.log.WithError(err).WithField("rule_id", rule.ID).Error("rule processing failed")
			events <- ProgressEvent{
				Type:           EventProgress,
				RuleID:         rule.ID.String(),
				RuleName:       rule.Name,
				EntityType:     string(rule.EntityType),
				Status:         RuleErrored,
				Reason:         err.Error(),
				UpdatedCount:   updated,
				ProcessedRules: processed,
			}
			continue
		}

		ruleUpdated := len(decisions)
		if mode == ModeApply {
			var applyErrors []string
			ruleUpdated, applyErrors = o.applyDecisions(ctx, rule, decisions, opts.Source)
			runErrors = append(runErrors, applyErrors...)
		}
		updated += ruleUpdated

		events <- ProgressEvent{
			Type:           EventProgress,
			RuleID:         rule.ID.String(),
			RuleName:       rule.Name,
			EntityType:     string(rule.EntityType),
			Status:         RuleCompleted,
			UpdatedCount:   updated,
			ProcessedRules: processed,
		}
	}

	events <- ProgressEvent{
		Type:            EventComplete,
		Date:            opts.Date.Format("2006-01-02"),
		UpdatedEntities: updated,
		Errors:          runErrors,
	}
}

// ruleSkipReason returns a human-readable reason to skip the rule, or "" to
// process it.
func (o *Orchestrator) ruleSkipReason(rule *models.AssignmentRule, onDuty map[int64]bool, enforceGate bool, now, since time.Time) string {
	if rule.RuleKind.IsExperimental() && !o.experimental {
		return "experimental rule kinds are disabled"
	}
	if enforceGate {
		if !o.gate.Due(rule, now) {
			return "not scheduled for this time"
		}
		if !since.IsZero() && o.gate.Today(since).Equal(o.gate.Today(now)) && o.gate.Due(rule, since) {
			return "already processed earlier today"
		}
	}
	eligible := false
	for _, d := range rule.Distributions {
		if onDuty[d.UserID] {
			eligible = true
			break
		}
	}
	if !eligible {
		return "none of the rule's users are on duty"
	}
	return ""
}

// decision is one planned ownership change for a main record.
type decision struct {
	record   crm.Record
	newOwner int64
}

// collectDecisions lists the rule's matching in-work records and draws a new
// owner for each. Records already owned by the drawn user produce no decision.
func (o *Orchestrator) collectDecisions(ctx context.Context, rule *models.AssignmentRule, onDuty map[int64]bool) ([]decision, error) {
	cond, err := ParseCondition(rule.RuleKind, rule.ConditionConfig)
	if err != nil {
		return nil, err
	}

	records, err := o.crm.QueryRecords(ctx, string(rule.EntityType), crm.Query{
		Select: o.selectFields(rule, cond),
	})
	if err != nil {
		return nil, err
	}

	var decisions []decision
	for _, rec := range records {
		if !Matches(cond, rec) {
			continue
		}
		newOwner, err := SelectOwner(rule, onDuty, o.rng)
		if err != nil {
			// Eligibility does not vary per record; nothing else will match
			// either.
			return nil, err
		}
		if newOwner == rec.OwnerID {
			continue
		}
		decisions = append(decisions, decision{record: rec, newOwner: newOwner})
	}
	return decisions, nil
}

// selectFields builds the listing select set: identity and owner, the fields
// the condition reads, and the relation fields when propagation is on.
func (o *Orchestrator) selectFields(rule *models.AssignmentRule, cond Condition) []string {
	fields := []string{crm.FieldID, crm.FieldOwner}
	seen := map[string]bool{crm.FieldID: true, crm.FieldOwner: true}
	add := func(f string) {
		if f != "" && !seen[f] {
			seen[f] = true
			fields = append(fields, f)
		}
	}
	for _, f := range cond.RequiredFields() {
		add(f)
	}
	if rule.PropagateToRelated && rule.EntityType == models.EntityTypeDeal {
		add(crm.FieldContact)
		add(crm.FieldCompany)
	}
	return fields
}

// applyDecisions writes the planned changes through a bounded worker pool and
// returns how many records were updated plus any per-record errors.
func (o *Orchestrator) applyDecisions(ctx context.Context, rule *models.AssignmentRule, decisions []decision, source models.AssignmentSource) (int, []string) {
	if len(decisions) == 0 {
		return 0, nil
	}

	var (
		mu       sync.Mutex
		updated  int
		errs     []string
		work     = make(chan decision)
		wg       sync.WaitGroup
		nWorkers = o.workers
	)
	if nWorkers > len(decisions) {
		nWorkers = len(decisions)
	}

	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for d := range work {
				if err := o.applyOne(ctx, rule, d, source); err != nil {
					mu.Lock()
					errs = append(errs, fmt.Sprintf("%s %d: %v", rule.EntityType, d.record.ID, err))
					mu.Unlock()
					continue
				}
				mu.Lock()
				updated++
				mu.Unlock()
			}
		}()
	}

	for _, d := range decisions {
		if ctx.Err() != nil {
			break
		}
		work <- d
	}
	close(work)
	wg.Wait()

	return updated, errs
}

// applyOne reassigns one record, records the change, and propagates to related
// contacts and the company when the rule asks for it. Propagation failures are
// logged but do not undo the main change.
func (o *Orchestrator) applyOne(ctx context.Context, rule *models.AssignmentRule, d decision, source models.AssignmentSource) error {
	if err := o.crm.SetOwner(ctx, string(rule.EntityType), d.record.ID, d.newOwner); err != nil {
		return err
	}
	o.appendHistory(ctx, &models.AssignmentHistory{
		EntityType: rule.EntityType,
		EntityID:   d.record.ID,
		OldOwnerID: ownerPtr(d.record.OwnerID),
		NewOwnerID: d.newOwner,
		Source:     source,
		RuleID:     &rule.ID,
	})

	if rule.PropagateToRelated && rule.EntityType == models.EntityTypeDeal {
		o.propagate(ctx, rule, d, source)
	}
	return nil
}

// propagate reassigns the deal's contacts and company to the same new owner.
// The related-record history entries carry the same source as the run that
// triggered them.
func (o *Orchestrator) propagate(ctx context.Context, rule *models.AssignmentRule, d decision, source models.AssignmentSource) {
	contacts, err := o.crm.GetDealContacts(ctx, d.record.ID)
	if err != nil {
		o.log.WithError(err).WithField("deal_id", d.record.ID).Warn("failed to list deal contacts")
	}
	for _, contactID := range contacts {
		o.propagateOne(ctx, rule, d, models.EntityTypeContact, contactID, source)
	}
	if companyID, ok := d.record.IntField(crm.FieldCompany); ok && companyID > 0 {
		o.propagateOne(ctx, rule, d, models.EntityTypeCompany, companyID, source)
	}
}

func (o *Orchestrator) propagateOne(ctx context.Context, rule *models.AssignmentRule, d decision, relatedType models.EntityType, relatedID int64, source models.AssignmentSource) {
	unlock := o.lockRelated(string(relatedType), relatedID)
	defer unlock()

	oldOwner, err := o.crm.GetOwner(ctx, string(relatedType), relatedID)
	if err != nil {
		o.log.WithError(err).WithFields(map[string]interface{}{
			"entity_type": relatedType,
			"entity_id":   relatedID,
		}).Warn("failed to read related record owner")
		return
	}
	if oldOwner == d.newOwner {
		return
	}
	if err := o.crm.SetOwner(ctx, string(relatedType), relatedID, d.newOwner); err != nil {
		o.log.WithError(err).WithFields(map[string]interface{}{
			"entity_type": relatedType,
			"entity_id":   relatedID,
		}).Warn("failed to propagate owner to related record")
		return
	}

	mainType := rule.EntityType
	mainID := d.record.ID
	o.appendHistory(ctx, &models.AssignmentHistory{
		EntityType:        relatedType,
		EntityID:          relatedID,
		OldOwnerID:        ownerPtr(oldOwner),
		NewOwnerID:        d.newOwner,
		Source:            source,
		RuleID:            &rule.ID,
		RelatedEntityType: &mainType,
		RelatedEntityID:   &mainID,
	})
}

// lockRelated serializes access to one related record across run workers.
func (o *Orchestrator) lockRelated(entityType string, id int64) func() {
	key := fmt.Sprintf("%s:%d", entityType, id)
	actual, _ := o.relatedLocks.LoadOrStore(key, &sync.Mutex{})
	mu := actual.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (o *Orchestrator) appendHistory(ctx context.Context, entry *models.AssignmentHistory) {
	if o.history == nil {
		return
	}
	if err := o.history.Append(ctx, entry); err != nil {
		o.log.WithError(err).WithFields(map[string]interface{}{
			"entity_type": entry.EntityType,
			"entity_id":   entry.EntityID,
		}).Error("failed to record assignment history")
	}
}

// Preview computes the would-be changes of a run without applying any of them.
func (o *Orchestrator) Preview(ctx context.Context, date time.Time) ([]PreviewEntry, error) {
	dutyIDs, err := o.duty.DutyUserIDs(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(dutyIDs) == 0 {
		return nil, apperrors.ErrNoDutyRoster
	}
	onDuty := make(map[int64]bool, len(dutyIDs))
	for _, id := range dutyIDs {
		onDuty[id] = true
	}

	rules, err := o.rules.EnabledRules(ctx)
	if err != nil {
		return nil, err
	}
	sortRules(rules)

	entries := []PreviewEntry{}
	var userIDs []int64
	for i := range rules {
		rule := &rules[i]
		if skip := o.ruleSkipReason(rule, onDuty, false, time.Time{}, time.Time{}); skip != "" {
			continue
		}
		decisions, err := o.collectDecisions(ctx, rule, onDuty)
		if err != nil {
			if apperrors.IsNoEligibleUsers(err) {
				continue
			}
			return nil, err
		}
		for _, d := range decisions {
			entry := PreviewEntry{
				EntityType: string(rule.EntityType),
				EntityID:   d.record.ID,
				RuleID:     rule.ID.String(),
				RuleName:   rule.Name,
				OldOwnerID: d.record.OwnerID,
				NewOwnerID: d.newOwner,
			}
			if rule.PropagateToRelated && rule.EntityType == models.EntityTypeDeal {
				entry.Related = o.previewRelated(ctx, d.record)
			}
			entries = append(entries, entry)
			userIDs = append(userIDs, d.record.OwnerID, d.newOwner)
		}
	}

	names := o.resolveNameMap(ctx, userIDs)
	for i := range entries {
		entries[i].OldOwnerName = names[entries[i].OldOwnerID]
		entries[i].NewOwnerName = names[entries[i].NewOwnerID]
	}
	return entries, nil
}

// previewRelated lists the contacts and company a propagating rule would also
// reassign along with the deal.
func (o *Orchestrator) previewRelated(ctx context.Context, rec crm.Record) []PreviewRelated {
	var related []PreviewRelated
	contacts, err := o.crm.GetDealContacts(ctx, rec.ID)
	if err != nil {
		o.log.WithError(err).WithField("deal_id", rec.ID).Warn("failed to list deal contacts")
	}
	for _, contactID := range contacts {
		related = append(related, PreviewRelated{EntityType: string(models.EntityTypeContact), EntityID: contactID})
	}
	if companyID, ok := rec.IntField(crm.FieldCompany); ok && companyID > 0 {
		related = append(related, PreviewRelated{EntityType: string(models.EntityTypeCompany), EntityID: companyID})
	}
	return related
}

// AssignRecord runs the per-record matching path for one record, as triggered
// by a CRM webhook. The gate applies: a rule not scheduled for the current
// moment does not claim the record.
func (o *Orchestrator) AssignRecord(ctx context.Context, entityType models.EntityType, recordID int64, now time.Time, source models.AssignmentSource) (*SingleResult, error) {
	if now.IsZero() {
		now = time.Now()
	}

	dutyIDs, err := o.duty.DutyUserIDs(ctx, o.gate.Today(now))
	if err != nil {
		return nil, err
	}
	if len(dutyIDs) == 0 {
		return &SingleResult{Assigned: false, Reason: "no duty roster for today"}, nil
	}
	onDuty := make(map[int64]bool, len(dutyIDs))
	for _, id := range dutyIDs {
		onDuty[id] = true
	}

	rules, err := o.rules.EnabledRules(ctx)
	if err != nil {
		return nil, err
	}
	if !o.experimental {
		kept := rules[:0]
		for _, r := range rules {
			if !r.RuleKind.IsExperimental() {
				kept = append(kept, r)
			}
		}
		rules = kept
	}

	rec, err := o.crm.GetRecord(ctx, string(entityType), recordID, o.unionFields(rules, entityType))
	if err != nil {
		return nil, err
	}

	rule := SelectRuleFor(rec, entityType, rules, o.gate, now)
	if rule == nil {
		return &SingleResult{Assigned: false, Reason: "no matching rule"}, nil
	}

	newOwner, err := SelectOwner(rule, onDuty, o.rng)
	if err != nil {
		if apperrors.IsNoEligibleUsers(err) {
			return &SingleResult{Assigned: false, Reason: "none of the rule's users are on duty", RuleID: rule.ID.String()}, nil
		}
		return nil, err
	}
	if newOwner == rec.OwnerID {
		return &SingleResult{Assigned: false, Reason: "record already owned by selected user", RuleID: rule.ID.String()}, nil
	}

	if err := o.applyOne(ctx, rule, decision{record: rec, newOwner: newOwner}, source); err != nil {
		return nil, err
	}
	return &SingleResult{
		Assigned:   true,
		RuleID:     rule.ID.String(),
		OldOwnerID: rec.OwnerID,
		NewOwnerID: newOwner,
	}, nil
}

// unionFields merges the select sets of every rule targeting the entity type.
func (o *Orchestrator) unionFields(rules []models.AssignmentRule, entityType models.EntityType) []string {
	fields := []string{crm.FieldID, crm.FieldOwner}
	seen := map[string]bool{crm.FieldID: true, crm.FieldOwner: true}
	for i := range rules {
		rule := &rules[i]
		if rule.EntityType != entityType {
			continue
		}
		cond, err := ParseCondition(rule.RuleKind, rule.ConditionConfig)
		if err != nil {
			continue
		}
		for _, f := range cond.RequiredFields() {
			if !seen[f] {
				seen[f] = true
				fields = append(fields, f)
			}
		}
		if rule.PropagateToRelated && entityType == models.EntityTypeDeal {
			for _, f := range []string{crm.FieldContact, crm.FieldCompany} {
				if !seen[f] {
					seen[f] = true
					fields = append(fields, f)
				}
			}
		}
	}
	return fields
}

func (o *Orchestrator) resolveNames(ctx context.Context, ids []int64) []string {
	byID := o.resolveNameMap(ctx, ids)
	if byID == nil {
		return nil
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, byID[id])
	}
	return names
}

func (o *Orchestrator) resolveNameMap(ctx context.Context, ids []int64) map[int64]string {
	if o.names == nil || len(ids) == 0 {
		return nil
	}
	return o.names.DisplayNames(ctx, ids)
}

// sortRules orders rules by ascending priority, ties by ascending id.
func sortRules(rules []models.AssignmentRule) {
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Priority != rules[j].Priority {
			return rules[i].Priority < rules[j].Priority
		}
		return rules[i].ID.String() < rules[j].ID.String()
	})
}

func ownerPtr(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}
