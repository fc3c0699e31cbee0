package graph

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"movie-question-api/internal/domain/entity"
)

// Neo4jStore runs read-only Cypher against the movie graph.
type Neo4jStore struct {
	driver neo4j.DriverWithContext
}

func NewNeo4jStore(uri, username, password string) (*Neo4jStore, error) {
	if uri == "" || username == "" || password == "" {
		return nil, fmt.Errorf("NEO4J_URI, NEO4J_USERNAME and NEO4J_PASSWORD must be set: %w", entity.ErrMissingCredential)
	}

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}
	return &Neo4jStore{driver: driver}, nil
}

func (s *Neo4jStore) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// SchemaSummary returns a one-line description of node labels and
// relationship types, e.g. "Node labels: Movie, Person; Relationship types:
// ACTED_IN, DIRECTED". The relationship-type procedure is not available on
// every server version, so SHOW RELATIONSHIP TYPES is tried as a fallback
// and a labels-only summary is acceptable.
func (s *Neo4jStore) SchemaSummary(ctx context.Context) (string, error) {
	labels, err := s.stringColumn(ctx, "CALL db.labels()", "label")
	if err != nil {
		return "", err
	}

	relTypes, err := s.stringColumn(ctx, "CALL db.relationshipTypes()", "relationshipType")
	if err != nil {
		relTypes, _ = s.stringColumn(ctx, "SHOW RELATIONSHIP TYPES", "name")
	}

	sort.Strings(labels)
	sort.Strings(relTypes)

	if len(relTypes) > 0 {
		return fmt.Sprintf("Node labels: %s; Relationship types: %s",
			strings.Join(labels, ", "), strings.Join(relTypes, ", ")), nil
	}
	return fmt.Sprintf("Node labels: %s", strings.Join(labels, ", ")), nil
}

// Run executes cypher in a read session and returns each record as a map.
func (s *Neo4jStore) Run(ctx context.Context, cypher string) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, nil)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	for result.Next(ctx) {
		rows = append(rows, result.Record().AsMap())
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Neo4jStore) stringColumn(ctx context.Context, query, column string) ([]string, error) {
	rows, err := s.Run(ctx, query)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, row := range rows {
		if v, ok := row[column].(string); ok {
			out = append(out, v)
			continue
		}
		// Column naming differs across server versions; take any string cell.
		for _, v := range row {
			if str, ok := v.(string); ok {
				out = append(out, str)
				break
			}
		}
	}
	return out, nil
}
