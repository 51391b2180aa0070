package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"duty-assignment-backend/internal/apperrors"
	"duty-assignment-backend/internal/logger"
)

// Client is the CRM collaborator consumed by the assignment engine. The engine
// never re-implements CRM search: record discovery, metadata, and mutations all
// go through here.
type Client interface {
	// QueryRecords lists records of an entity type. The entity's in-work filter
	// (when configured) is merged into the query so closed records never reach
	// the engine.
	QueryRecords(ctx context.Context, entityType string, q Query) ([]Record, error)
	// GetRecord fetches one record with the given select fields.
	GetRecord(ctx context.Context, entityType string, id int64, selectFields []string) (Record, error)
	// GetOwner returns the record's current owner id, 0 when unset.
	GetOwner(ctx context.Context, entityType string, id int64) (int64, error)
	// SetOwner reassigns the record to newOwnerID.
	SetOwner(ctx context.Context, entityType string, id int64, newOwnerID int64) error
	// GetFieldMetadata returns fieldID -> metadata for an entity type.
	GetFieldMetadata(ctx context.Context, entityType string) (map[string]FieldMeta, error)
	// GetFieldValues lists the allowed values of a status-backed field.
	GetFieldValues(ctx context.Context, entityType, fieldID string) ([]FieldValue, error)
	// GetCategoryStages lists the stages of one category of a pipeline field.
	GetCategoryStages(ctx context.Context, entityType, fieldID string, categoryID int) ([]CategoryStage, error)
	// GetDealContacts returns the contact ids linked to a deal.
	GetDealContacts(ctx context.Context, dealID int64) ([]int64, error)
	// GetUsers lists CRM staff users.
	GetUsers(ctx context.Context) ([]User, error)
}

// restClient talks to the CRM's inbound-webhook REST endpoint
type restClient struct {
	baseURL string
	mapping map[string]EntityMapping
	http    *http.Client
	timeout time.Duration
	log     *logger.Logger
}

// NewClient creates a REST CRM client. baseURL is the inbound webhook base,
// e.g. https://example.bitrix24.ru/rest/1/token
func NewClient(baseURL string, mapping map[string]EntityMapping, timeout time.Duration) (Client, error) {
	if baseURL == "" {
		return nil, apperrors.ErrCrmNotConfigured
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if mapping == nil {
		mapping = defaultMapping()
	}
	return &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		mapping: mapping,
		http:    &http.Client{},
		timeout: timeout,
		log:     logger.WithComponent("crm"),
	}, nil
}

type apiResponse struct {
	Result           json.RawMessage `json:"result"`
	Next             *int            `json:"next"`
	Total            int             `json:"total"`
	Error            string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

// call issues one REST method with a per-call timeout. Timeouts are per CRM
// call, not per run; the caller treats a timed-out call as a record-level
// failure.
func (c *restClient) call(ctx context.Context, method string, payload map[string]any, out any) (*apiResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.NewUpstreamError(method, err)
	}

	url := fmt.Sprintf("%s/%s.json", c.baseURL, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewUpstreamError(method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewUpstreamError(method, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var api apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&api); err != nil {
		return nil, apperrors.NewUpstreamError(method, err)
	}
	if api.Error != "" {
		return nil, apperrors.NewUpstreamError(method, fmt.Errorf("%s: %s", api.Error, api.ErrorDescription))
	}
	if out != nil {
		if err := json.Unmarshal(api.Result, out); err != nil {
			return nil, apperrors.NewUpstreamError(method, err)
		}
	}
	return &api, nil
}

func (c *restClient) entityMapping(entityType string) (EntityMapping, error) {
	m, ok := c.mapping[entityType]
	if !ok {
		return EntityMapping{}, apperrors.NewConfigurationError(fmt.Sprintf("unknown CRM entity type %q", entityType))
	}
	return m, nil
}

func (c *restClient) QueryRecords(ctx context.Context, entityType string, q Query) ([]Record, error) {
	m, err := c.entityMapping(entityType)
	if err != nil {
		return nil, err
	}

	sel := q.Select
	if len(sel) == 0 {
		sel = m.DefaultSelect
	}
	filter := make(map[string]string, len(q.Filter)+len(m.InWorkFilter))
	for k, v := range m.InWorkFilter {
		filter[k] = v
	}
	for k, v := range q.Filter {
		filter[k] = v
	}

	var records []Record
	start := 0
	for {
		payload := map[string]any{
			"select": sel,
			"start":  start,
		}
		if len(filter) > 0 {
			payload["filter"] = filter
		}

		var page []map[string]any
		api, err := c.call(ctx, m.ListMethod, payload, &page)
		if err != nil {
			return nil, err
		}
		for _, raw := range page {
			records = append(records, ParseRecord(raw))
		}
		if api.Next == nil {
			break
		}
		start = *api.Next
	}

	c.log.WithFields(map[string]interface{}{
		"entity_type": entityType,
		"count":       len(records),
	}).Debug("queried CRM records")
	return records, nil
}

func (c *restClient) GetRecord(ctx context.Context, entityType string, id int64, selectFields []string) (Record, error) {
	m, err := c.entityMapping(entityType)
	if err != nil {
		return Record{}, err
	}

	var raw map[string]any
	payload := map[string]any{"id": id}
	if len(selectFields) > 0 {
		payload["select"] = selectFields
	}
	if _, err := c.call(ctx, m.GetMethod, payload, &raw); err != nil {
		return Record{}, err
	}
	return ParseRecord(raw), nil
}

func (c *restClient) GetOwner(ctx context.Context, entityType string, id int64) (int64, error) {
	rec, err := c.GetRecord(ctx, entityType, id, []string{FieldID, FieldOwner})
	if err != nil {
		return 0, err
	}
	return rec.OwnerID, nil
}

func (c *restClient) SetOwner(ctx context.Context, entityType string, id int64, newOwnerID int64) error {
	m, err := c.entityMapping(entityType)
	if err != nil {
		return err
	}

	payload := map[string]any{
		"id":     id,
		"fields": map[string]any{FieldOwner: newOwnerID},
	}
	if _, err := c.call(ctx, m.UpdateMethod, payload, nil); err != nil {
		return err
	}
	return nil
}

func (c *restClient) GetFieldMetadata(ctx context.Context, entityType string) (map[string]FieldMeta, error) {
	m, err := c.entityMapping(entityType)
	if err != nil {
		return nil, err
	}

	var fields map[string]FieldMeta
	if _, err := c.call(ctx, m.FieldsMethod, map[string]any{}, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (c *restClient) GetFieldValues(ctx context.Context, entityType, fieldID string) ([]FieldValue, error) {
	fields, err := c.GetFieldMetadata(ctx, entityType)
	if err != nil {
		return nil, err
	}
	meta, ok := fields[fieldID]
	if !ok || meta.StatusType == "" {
		return nil, apperrors.NewValidationError("fieldId", fmt.Sprintf("field %s of %s has no status values", fieldID, entityType))
	}

	var values []FieldValue
	payload := map[string]any{
		"filter": map[string]string{"ENTITY_ID": meta.StatusType},
	}
	if _, err := c.call(ctx, "crm.status.list", payload, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (c *restClient) GetCategoryStages(ctx context.Context, entityType, fieldID string, categoryID int) ([]CategoryStage, error) {
	fields, err := c.GetFieldMetadata(ctx, entityType)
	if err != nil {
		return nil, err
	}
	meta, ok := fields[fieldID]
	if !ok {
		return nil, apperrors.NewValidationError("fieldId", fmt.Sprintf("field %s not found on %s", fieldID, entityType))
	}

	// Stage dictionaries live under <statusType>_<categoryID>; category 0 uses
	// the bare dictionary name.
	entityID := meta.StatusType
	if entityID == "" {
		entityID = strings.ToUpper(entityType) + "_STAGE"
	}
	if categoryID > 0 {
		entityID = entityID + "_" + strconv.Itoa(categoryID)
	}

	var stages []CategoryStage
	payload := map[string]any{
		"filter": map[string]string{"ENTITY_ID": entityID},
	}
	if _, err := c.call(ctx, "crm.status.list", payload, &stages); err != nil {
		return nil, err
	}
	return stages, nil
}

func (c *restClient) GetDealContacts(ctx context.Context, dealID int64) ([]int64, error) {
	var items []struct {
		ContactID json.Number `json:"CONTACT_ID"`
	}
	payload := map[string]any{"id": dealID}
	if _, err := c.call(ctx, "crm.deal.contact.items.get", payload, &items); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if id, err := item.ContactID.Int64(); err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (c *restClient) GetUsers(ctx context.Context) ([]User, error) {
	var users []User
	start := 0
	for {
		payload := map[string]any{
			"select": []string{"ID", "NAME", "LAST_NAME", "EMAIL", "ACTIVE"},
			"start":  start,
		}

		var page []map[string]any
		api, err := c.call(ctx, "user.get", payload, &page)
		if err != nil {
			return nil, err
		}
		for _, raw := range page {
			rec := ParseRecord(raw)
			id, ok := rec.IntField("ID")
			if !ok {
				continue
			}
			users = append(users, User{
				ID:       id,
				Name:     rec.Fields["NAME"],
				LastName: rec.Fields["LAST_NAME"],
				Email:    rec.Fields["EMAIL"],
				Active:   rec.Fields["ACTIVE"] == "true" || rec.Fields["ACTIVE"] == "Y",
			})
		}
		if api.Next == nil {
			break
		}
		start = *api.Next
	}
	return users, nil
}
