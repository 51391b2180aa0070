package engine

// RunMode selects whether a batch run writes ownership changes back to the CRM
// or only reports what it would change.
type RunMode string

const (
	ModeApply  RunMode = "apply"
	ModeDryRun RunMode = "dry_run"
)

// EventType tags a progress event emitted during a batch run
type EventType string

const (
	EventStart    EventType = "start"
	EventProgress EventType = "progress"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
)

// RuleStatus is the per-rule outcome reported in progress events
type RuleStatus string

const (
	RuleProcessing RuleStatus = "processing"
	RuleCompleted  RuleStatus = "completed"
	RuleSkipped    RuleStatus = "skipped"
	RuleErrored    RuleStatus = "error"
)

// ProgressEvent is one element of a batch run's event stream. A run emits one
// start event, two progress events per rule (processing, then its outcome), and
// exactly one terminal complete or error event.
type ProgressEvent struct {
	Type EventType `json:"type"`

	// start
	Date          string   `json:"date,omitempty"`
	TotalRules    int      `json:"total_rules,omitempty"`
	DutyUserIDs   []int64  `json:"duty_user_ids,omitempty"`
	DutyUserNames []string `json:"duty_user_names,omitempty"`

	// progress
	RuleID         string     `json:"rule_id,omitempty"`
	RuleName       string     `json:"rule_name,omitempty"`
	EntityType     string     `json:"entity_type,omitempty"`
	Status         RuleStatus `json:"status,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	UpdatedCount   int        `json:"updated_count,omitempty"`
	ProcessedRules int        `json:"processed_rules,omitempty"`

	// complete
	UpdatedEntities int      `json:"updated_entities,omitempty"`
	Errors          []string `json:"errors,omitempty"`

	// error
	Error string `json:"error,omitempty"`
}

// RunSummary aggregates a finished run for callers that do not stream.
type RunSummary struct {
	Date            string   `json:"date"`
	Mode            RunMode  `json:"mode"`
	TotalRules      int      `json:"total_rules"`
	ProcessedRules  int      `json:"processed_rules"`
	UpdatedEntities int      `json:"updated_entities"`
	Errors          []string `json:"errors,omitempty"`
}

// PreviewEntry is one would-be ownership change computed without applying it.
// For propagating deal rules Related lists the records the change would carry
// over to.
type PreviewEntry struct {
	EntityType   string           `json:"entity_type"`
	EntityID     int64            `json:"entity_id"`
	RuleID       string           `json:"rule_id"`
	RuleName     string           `json:"rule_name"`
	OldOwnerID   int64            `json:"old_owner_id"`
	OldOwnerName string           `json:"old_owner_name,omitempty"`
	NewOwnerID   int64            `json:"new_owner_id"`
	NewOwnerName string           `json:"new_owner_name,omitempty"`
	Related      []PreviewRelated `json:"related,omitempty"`
}

// PreviewRelated is one related record a propagating rule would also reassign.
type PreviewRelated struct {
	EntityType string `json:"entity_type"`
	EntityID   int64  `json:"entity_id"`
}

// SingleResult reports the outcome of the single-record webhook path.
type SingleResult struct {
	Assigned   bool   `json:"assigned"`
	Reason     string `json:"reason,omitempty"`
	RuleID     string `json:"rule_id,omitempty"`
	OldOwnerID int64  `json:"old_owner_id,omitempty"`
	NewOwnerID int64  `json:"new_owner_id,omitempty"`
}
