package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/fadedpez/aetheria/pkg/entities"
)

const historyMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"date": { "type": "date" },
			"type": { "type": "keyword" },
			"summary": { "type": "text" }
		}
	}
}`

// ElasticsearchConfig holds connection options for the history mirror
type ElasticsearchConfig struct {
	URL      string
	Username string
	Password string
	Index    string

	// Transport overrides the HTTP transport, mainly for tests
	Transport http.RoundTripper
}

// ElasticsearchMirror copies history entries into an Elasticsearch index
type ElasticsearchMirror struct {
	client *elasticsearch.Client
	index  string
}

// NewElasticsearchMirror connects and makes sure the index exists
func NewElasticsearchMirror(ctx context.Context, config ElasticsearchConfig) (*ElasticsearchMirror, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{config.URL},
		Transport: config.Transport,
	}
	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	if config.Index == "" {
		config.Index = "aetheria_history"
	}

	m := &ElasticsearchMirror{client: client, index: config.Index}
	if err := m.ensureIndex(ctx); err != nil {
		return nil, fmt.Errorf("error initializing index: %w", err)
	}
	return m, nil
}

func (m *ElasticsearchMirror) ensureIndex(ctx context.Context) error {
	res, err := m.client.Indices.Exists([]string{m.index}, m.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("error checking if history index exists: %w", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		return nil
	}

	req := esapi.IndicesCreateRequest{
		Index: m.index,
		Body:  strings.NewReader(historyMapping),
	}
	res, err = req.Do(ctx, m.client)
	if err != nil {
		return fmt.Errorf("error creating history index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating history index: %s", res.String())
	}
	return nil
}

// IndexEntry stores entry under its ID
func (m *ElasticsearchMirror) IndexEntry(ctx context.Context, entry entities.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("error marshaling history entry: %w", err)
	}

	res, err := m.client.Index(
		m.index,
		bytes.NewReader(data),
		m.client.Index.WithDocumentID(entry.ID),
		m.client.Index.WithContext(ctx),
		m.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("error indexing history entry: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing history entry: %s", res.String())
	}
	return nil
}

// Clear deletes every mirrored entry
func (m *ElasticsearchMirror) Clear(ctx context.Context) error {
	res, err := m.client.DeleteByQuery(
		[]string{m.index},
		strings.NewReader(`{"query":{"match_all":{}}}`),
		m.client.DeleteByQuery.WithContext(ctx),
		m.client.DeleteByQuery.WithRefresh(true),
	)
	if err != nil {
		return fmt.Errorf("error clearing history index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error clearing history index: %s", res.String())
	}
	return nil
}
