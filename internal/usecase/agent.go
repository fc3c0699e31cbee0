package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"movie-question-api/internal/domain/repository"
)

const cypherSystemPrompt = "You are an expert in Neo4j Cypher. " +
	"Use ONLY the node labels and relationship types explicitly listed in the provided schema. " +
	"Do not invent labels or relationship types. If a label is not listed, do not use it. " +
	"Return ONLY a single valid Cypher query. No commentary. No markdown fences."

const replySystemPrompt = "You answer the user's question using ONLY the provided Neo4j query results. " +
	"If the results are empty, explain that you don't have hard data in the database and provide result to the best of your knowledge. " +
	"Don't say that you don't have enough data and cannot confirm anything, just answer to the best of your ability and comment that you could refine your answer given more data. " +
	"Be concise and precise. If there was an execution error, surface it succinctly and politely."

// GraphAgent answers movie questions by generating a Cypher query with the
// fast model, running it against the movie graph, and composing the final
// answer with the primary model from the query rows.
//
// The graph is an optional context source: with a nil store, or when the
// query fails, the failure is folded into the row set as an error entry and
// the reply model still answers from what it has.
type GraphAgent struct {
	chat         repository.ChatCompleter
	graph        repository.GraphStore
	fastModel    string
	primaryModel string
}

func NewGraphAgent(chat repository.ChatCompleter, graph repository.GraphStore, fastModel, primaryModel string) *GraphAgent {
	return &GraphAgent{chat: chat, graph: graph, fastModel: fastModel, primaryModel: primaryModel}
}

func (a *GraphAgent) Answer(ctx context.Context, question string) (string, error) {
	schema := a.schemaSummary(ctx)

	schemaText := schema
	if schemaText == "" {
		schemaText = "Unknown"
	}
	raw, err := a.chat.Complete(ctx, a.fastModel, 0,
		cypherSystemPrompt,
		fmt.Sprintf("Schema: %s\n\nQuestion: %s", schemaText, question))
	if err != nil {
		return "", fmt.Errorf("cypher generation failed: %w", err)
	}
	cypher := extractCypher(raw)

	rows := a.runQuery(ctx, cypher)

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode query rows: %w", err)
	}

	answer, err := a.chat.Complete(ctx, a.primaryModel, 0.2,
		replySystemPrompt,
		fmt.Sprintf("Question: %s\n\nData (JSON):\n%s", question, data))
	if err != nil {
		return "", fmt.Errorf("answer generation failed: %w", err)
	}

	return stripThinkTags(answer), nil
}

// schemaSummary is best effort: an unreachable or unconfigured graph yields
// an empty summary, not a failed request.
func (a *GraphAgent) schemaSummary(ctx context.Context) string {
	if a.graph == nil {
		return ""
	}
	schema, err := a.graph.SchemaSummary(ctx)
	if err != nil {
		return ""
	}
	return schema
}

func (a *GraphAgent) runQuery(ctx context.Context, cypher string) []map[string]any {
	if a.graph == nil {
		return []map[string]any{{"error": "graph database not configured"}}
	}
	rows, err := a.graph.Run(ctx, cypher)
	if err != nil {
		return []map[string]any{{"error": err.Error()}}
	}
	if rows == nil {
		rows = []map[string]any{}
	}
	return rows
}
