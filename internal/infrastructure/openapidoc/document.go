package openapidoc

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// RequiredOperations must be present for the API reference pages to render.
var RequiredOperations = []string{"createChatCompletion", "listModels"}

var methodOrder = map[string]int{
	"get": 0, "post": 1, "put": 2, "patch": 3, "delete": 4, "head": 5, "options": 6, "trace": 7,
}

// Operation is one method on one path.
type Operation struct {
	ID      string   `json:"operation_id"`
	Method  string   `json:"method"`
	Path    string   `json:"path"`
	Summary string   `json:"summary,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// Document is a parsed OpenAPI file kept in both YAML and JSON form.
type Document struct {
	Title      string
	Version    string
	OpenAPI    string
	yamlBytes  []byte
	jsonBytes  []byte
	operations []Operation
	byID       map[string]Operation
}

type rawDocument struct {
	OpenAPI string `yaml:"openapi"`
	Info    struct {
		Title   string `yaml:"title"`
		Version string `yaml:"version"`
	} `yaml:"info"`
	Paths map[string]map[string]yaml.Node `yaml:"paths"`
}

type rawOperation struct {
	OperationID string   `yaml:"operationId"`
	Summary     string   `yaml:"summary"`
	Tags        []string `yaml:"tags"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read openapi document: %w", err)
	}
	return Parse(data)
}

// Parse decodes an OpenAPI 3 document.
func Parse(data []byte) (*Document, error) {
	var raw rawDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	if !strings.HasPrefix(raw.OpenAPI, "3.") {
		return nil, fmt.Errorf("unsupported openapi version %q", raw.OpenAPI)
	}

	doc := &Document{
		Title:     raw.Info.Title,
		Version:   raw.Info.Version,
		OpenAPI:   raw.OpenAPI,
		yamlBytes: data,
		byID:      make(map[string]Operation),
	}

	for path, item := range raw.Paths {
		for method, node := range item {
			method = strings.ToLower(method)
			if _, ok := methodOrder[method]; !ok {
				continue
			}
			var op rawOperation
			if err := node.Decode(&op); err != nil {
				return nil, fmt.Errorf("decode %s %s: %w", strings.ToUpper(method), path, err)
			}
			operation := Operation{
				ID:      op.OperationID,
				Method:  strings.ToUpper(method),
				Path:    path,
				Summary: op.Summary,
				Tags:    op.Tags,
			}
			if op.OperationID != "" {
				if dup, exists := doc.byID[op.OperationID]; exists {
					return nil, fmt.Errorf("duplicate operationId %q on %s %s and %s %s",
						op.OperationID, dup.Method, dup.Path, operation.Method, path)
				}
				doc.byID[op.OperationID] = operation
			}
			doc.operations = append(doc.operations, operation)
		}
	}
	sort.Slice(doc.operations, func(i, j int) bool {
		a, b := doc.operations[i], doc.operations[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return methodOrder[strings.ToLower(a.Method)] < methodOrder[strings.ToLower(b.Method)]
	})

	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse openapi document: %w", err)
	}
	jsonBytes, err := json.Marshal(stringKeys(tree))
	if err != nil {
		return nil, fmt.Errorf("convert openapi document to json: %w", err)
	}
	doc.jsonBytes = jsonBytes
	return doc, nil
}

// Operations lists every operation ordered by path, then method.
func (d *Document) Operations() []Operation {
	return append([]Operation(nil), d.operations...)
}

// Operation looks an operation up by its operationId.
func (d *Document) Operation(id string) (Operation, bool) {
	op, ok := d.byID[id]
	return op, ok
}

// Require fails when any of ids is missing from the document.
func (d *Document) Require(ids ...string) error {
	var missing []string
	for _, id := range ids {
		if _, ok := d.byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("openapi document is missing operations: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (d *Document) YAML() []byte { return d.yamlBytes }

func (d *Document) JSON() []byte { return d.jsonBytes }

// stringKeys turns map[any]any nodes (from keys such as 200) into
// map[string]any so the tree can be encoded as JSON.
func stringKeys(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = stringKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, val := range node {
			out[i] = stringKeys(val)
		}
		return out
	default:
		return v
	}
}
