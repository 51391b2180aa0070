package crm

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Well-known CRM field ids
const (
	FieldID       = "ID"
	FieldOwner    = "ASSIGNED_BY_ID"
	FieldCategory = "CATEGORY_ID"
	FieldStage    = "STAGE_ID"
	FieldContact  = "CONTACT_ID"
	FieldCompany  = "COMPANY_ID"
)

// Record is one CRM entity row. The CRM returns every field as a string; Fields
// keeps them that way and typed accessors convert on demand.
type Record struct {
	ID      int64
	OwnerID int64
	Fields  map[string]string
}

// Field returns the raw string value of a field and whether it is present and
// non-empty. CATEGORY_ID "0" is the default pipeline and counts as present.
func (r Record) Field(fieldID string) (string, bool) {
	v, ok := r.Fields[fieldID]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// IntField returns a field parsed as int64
func (r Record) IntField(fieldID string) (int64, bool) {
	v, ok := r.Fields[fieldID]
	if !ok || v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseRecord normalizes a raw CRM row into a Record. Numeric and boolean
// values are flattened to their string form; nested values are dropped.
func ParseRecord(raw map[string]any) Record {
	rec := Record{Fields: make(map[string]string, len(raw))}
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			rec.Fields[k] = val
		case float64:
			rec.Fields[k] = strconv.FormatInt(int64(val), 10)
		case json.Number:
			rec.Fields[k] = val.String()
		case bool:
			rec.Fields[k] = fmt.Sprintf("%t", val)
		}
	}
	if id, ok := rec.IntField(FieldID); ok {
		rec.ID = id
	}
	if owner, ok := rec.IntField(FieldOwner); ok {
		rec.OwnerID = owner
	}
	return rec
}

// Query restricts a record listing. Select defaults to the entity's configured
// default field set when empty.
type Query struct {
	Select []string
	Filter map[string]string
}

// FieldMeta describes one field of a CRM entity
type FieldMeta struct {
	Type       string `json:"type"`
	Label      string `json:"title"`
	StatusType string `json:"statusType,omitempty"`
}

// FieldValue is one allowed value of an enumeration/status field
type FieldValue struct {
	ID   string `json:"ID"`
	Name string `json:"NAME"`
}

// CategoryStage is one pipeline stage scoped to a category
type CategoryStage struct {
	ID   string `json:"STATUS_ID"`
	Name string `json:"NAME"`
}

// User is a CRM staff user
type User struct {
	ID       int64
	Name     string
	LastName string
	Email    string
	Active   bool
}
