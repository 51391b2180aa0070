package models

// EntityType identifies the kind of CRM record a rule targets
type EntityType string

const (
	EntityTypeDeal    EntityType = "deal"
	EntityTypeContact EntityType = "contact"
	EntityTypeCompany EntityType = "company"
	EntityTypeLead    EntityType = "lead"
)

// IsValid checks if the EntityType is valid
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeDeal, EntityTypeContact, EntityTypeCompany, EntityTypeLead:
		return true
	}
	return false
}

// RuleKind discriminates how a rule's condition config is interpreted
type RuleKind string

const (
	// RuleKindByField matches records on a field value (category/stage or status).
	RuleKindByField RuleKind = "by_field"
	// RuleKindByCurrentOwner matches on the record's current owner.
	// Experimental: gated behind ENABLE_EXPERIMENTAL_RULE_KINDS.
	RuleKindByCurrentOwner RuleKind = "by_current_owner"
	// RuleKindCombined is a logical AND of sub-conditions.
	// Experimental: gated behind ENABLE_EXPERIMENTAL_RULE_KINDS.
	RuleKindCombined RuleKind = "combined"
)

// IsValid checks if the RuleKind is valid
func (k RuleKind) IsValid() bool {
	switch k {
	case RuleKindByField, RuleKindByCurrentOwner, RuleKindCombined:
		return true
	}
	return false
}

// IsExperimental reports whether the kind requires the experimental capability flag
func (k RuleKind) IsExperimental() bool {
	return k == RuleKindByCurrentOwner || k == RuleKindCombined
}

// AssignmentSource records what triggered an ownership change
type AssignmentSource string

const (
	SourceWebhook   AssignmentSource = "webhook"
	SourceScheduled AssignmentSource = "scheduled"
	SourceManual    AssignmentSource = "manual"
)

// IsValid checks if the AssignmentSource is valid
func (s AssignmentSource) IsValid() bool {
	switch s {
	case SourceWebhook, SourceScheduled, SourceManual:
		return true
	}
	return false
}
