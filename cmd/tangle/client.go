package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mkorcha/tangle/internal/domain/entities"
	"github.com/mkorcha/tangle/internal/infrastructure/snapshot"
)

// apiClient is a thin HTTP client for a running tangle server. Every CLI
// command except serve and init goes through it.
type apiClient struct {
	httpClient *http.Client
	server     string
}

func newAPIClient(server string) *apiClient {
	return &apiClient{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		server:     strings.TrimRight(server, "/"),
	}
}

func (c *apiClient) request(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.server+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		payload, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *apiClient) addPerson(ctx context.Context, name, avatar string) (*entities.Person, error) {
	var p entities.Person
	in := map[string]string{"name": name, "avatar": avatar}
	if err := c.request(ctx, http.MethodPost, "/api/people", in, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *apiClient) listPeople(ctx context.Context) ([]entities.Person, error) {
	var people []entities.Person
	if err := c.request(ctx, http.MethodGet, "/api/people", nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (c *apiClient) deletePerson(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/people/"+id, nil, nil)
}

func (c *apiClient) personRelationships(ctx context.Context, id string) ([]entities.Relationship, error) {
	var rels []entities.Relationship
	if err := c.request(ctx, http.MethodGet, "/api/people/"+id+"/relationships", nil, &rels); err != nil {
		return nil, err
	}
	return rels, nil
}

func (c *apiClient) personEvents(ctx context.Context, id string) ([]entities.NetworkEvent, error) {
	var events []entities.NetworkEvent
	if err := c.request(ctx, http.MethodGet, "/api/people/"+id+"/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

type relationshipRequest struct {
	Person1ID    string `json:"person1_id"`
	Person2ID    string `json:"person2_id"`
	Type         string `json:"type"`
	HealthScore  *int   `json:"health_score,omitempty"`
	P1ToP2Type   string `json:"p1_to_p2_type,omitempty"`
	P2ToP1Type   string `json:"p2_to_p1_type,omitempty"`
	P1ToP2Health *int   `json:"p1_to_p2_health,omitempty"`
	P2ToP1Health *int   `json:"p2_to_p1_health,omitempty"`
}

func (c *apiClient) addRelationship(ctx context.Context, req relationshipRequest) (*entities.Relationship, error) {
	var rel entities.Relationship
	if err := c.request(ctx, http.MethodPost, "/api/relationships", req, &rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

func (c *apiClient) listRelationships(ctx context.Context) ([]entities.Relationship, error) {
	var rels []entities.Relationship
	if err := c.request(ctx, http.MethodGet, "/api/relationships", nil, &rels); err != nil {
		return nil, err
	}
	return rels, nil
}

func (c *apiClient) getRelationship(ctx context.Context, id string) (*entities.Relationship, error) {
	var rel entities.Relationship
	if err := c.request(ctx, http.MethodGet, "/api/relationships/"+id, nil, &rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

func (c *apiClient) relationshipForPair(ctx context.Context, a, b string) (*entities.Relationship, error) {
	var rel entities.Relationship
	path := fmt.Sprintf("/api/relationships/pair?a=%s&b=%s", a, b)
	if err := c.request(ctx, http.MethodGet, path, nil, &rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

func (c *apiClient) deleteRelationship(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/relationships/"+id, nil, nil)
}

type eventRequest struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Impact      *int   `json:"impact,omitempty"`
	Image       string `json:"image,omitempty"`
}

func (c *apiClient) recordEvent(ctx context.Context, relationshipID string, req eventRequest) (*entities.Relationship, error) {
	var rel entities.Relationship
	if err := c.request(ctx, http.MethodPost, "/api/relationships/"+relationshipID+"/events", req, &rel); err != nil {
		return nil, err
	}
	return &rel, nil
}

func (c *apiClient) relationshipEvents(ctx context.Context, relationshipID string) ([]entities.NetworkEvent, error) {
	var events []entities.NetworkEvent
	if err := c.request(ctx, http.MethodGet, "/api/relationships/"+relationshipID+"/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

type networkEventRequest struct {
	Category              string         `json:"category"`
	Description           string         `json:"description"`
	Date                  string         `json:"date,omitempty"`
	Image                 string         `json:"image,omitempty"`
	Participants          []string       `json:"participants"`
	ImpactOverrides       map[string]int `json:"impact_overrides,omitempty"`
	ManualRelationshipIDs []string       `json:"manual_relationship_ids,omitempty"`
}

func (c *apiClient) createNetworkEvent(ctx context.Context, req networkEventRequest) (*entities.NetworkEvent, error) {
	var ev entities.NetworkEvent
	if err := c.request(ctx, http.MethodPost, "/api/network-events", req, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (c *apiClient) previewNetworkEvent(ctx context.Context, req networkEventRequest) ([]entities.Impact, error) {
	var out struct {
		Impacts []entities.Impact `json:"impacts"`
	}
	if err := c.request(ctx, http.MethodPost, "/api/network-events/preview", req, &out); err != nil {
		return nil, err
	}
	return out.Impacts, nil
}

func (c *apiClient) listNetworkEvents(ctx context.Context) ([]entities.NetworkEvent, error) {
	var events []entities.NetworkEvent
	if err := c.request(ctx, http.MethodGet, "/api/network-events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *apiClient) deleteNetworkEvent(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/api/network-events/"+id, nil, nil)
}

func (c *apiClient) exportSnapshot(ctx context.Context) (*snapshot.Snapshot, error) {
	var snap snapshot.Snapshot
	if err := c.request(ctx, http.MethodGet, "/api/export", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (c *apiClient) importSnapshot(ctx context.Context, snap *snapshot.Snapshot) error {
	return c.request(ctx, http.MethodPost, "/api/import", snap, nil)
}

func (c *apiClient) seed(ctx context.Context) (bool, error) {
	var out struct {
		Seeded bool `json:"seeded"`
	}
	if err := c.request(ctx, http.MethodPost, "/api/seed", nil, &out); err != nil {
		return false, err
	}
	return out.Seeded, nil
}

func (c *apiClient) categories(ctx context.Context) ([]entities.EventCategory, error) {
	var cats []entities.EventCategory
	if err := c.request(ctx, http.MethodGet, "/api/categories", nil, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (c *apiClient) relationshipTypes(ctx context.Context) ([]string, error) {
	var types []string
	if err := c.request(ctx, http.MethodGet, "/api/relationship-types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}
