package crm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EntityMapping tells the client which REST methods serve an entity type and
// which fields a listing selects by default
type EntityMapping struct {
	ListMethod    string            `yaml:"list_method"`
	GetMethod     string            `yaml:"get_method"`
	UpdateMethod  string            `yaml:"update_method"`
	FieldsMethod  string            `yaml:"fields_method"`
	DefaultSelect []string          `yaml:"default_select"`
	InWorkFilter  map[string]string `yaml:"in_work_filter"`
}

type mappingFile struct {
	Entities map[string]EntityMapping `yaml:"entities"`
}

// LoadMapping reads the entity mapping file. A missing file falls back to the
// conventional crm.<entity>.<op> method names for the four core entity types.
func LoadMapping(path string) (map[string]EntityMapping, error) {
	if path == "" {
		return defaultMapping(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultMapping(), nil
		}
		return nil, fmt.Errorf("read crm mapping: %w", err)
	}

	var file mappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse crm mapping: %w", err)
	}

	mapping := defaultMapping()
	for entity, m := range file.Entities {
		base := mapping[entity]
		if m.ListMethod != "" {
			base.ListMethod = m.ListMethod
		}
		if m.GetMethod != "" {
			base.GetMethod = m.GetMethod
		}
		if m.UpdateMethod != "" {
			base.UpdateMethod = m.UpdateMethod
		}
		if m.FieldsMethod != "" {
			base.FieldsMethod = m.FieldsMethod
		}
		if len(m.DefaultSelect) > 0 {
			base.DefaultSelect = m.DefaultSelect
		}
		if len(m.InWorkFilter) > 0 {
			base.InWorkFilter = m.InWorkFilter
		}
		mapping[entity] = base
	}
	return mapping, nil
}

func defaultMapping() map[string]EntityMapping {
	mapping := make(map[string]EntityMapping, 4)
	for _, entity := range []string{"deal", "contact", "company", "lead"} {
		m := EntityMapping{
			ListMethod:    fmt.Sprintf("crm.%s.list", entity),
			GetMethod:     fmt.Sprintf("crm.%s.get", entity),
			UpdateMethod:  fmt.Sprintf("crm.%s.update", entity),
			FieldsMethod:  fmt.Sprintf("crm.%s.fields", entity),
			DefaultSelect: []string{FieldID, FieldOwner},
		}
		if entity == "deal" {
			// Only deals that are still in work get reassigned.
			m.InWorkFilter = map[string]string{"STAGE_SEMANTIC_ID": "P"}
		}
		mapping[entity] = m
	}
	return mapping
}
