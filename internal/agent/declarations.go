package agent

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/genai"
)

// toFunctionDeclarations converts discovered MCP tools into the Gemini
// function-calling declarations the model consumes.
func toFunctionDeclarations(tools []*mcp.Tool) ([]*genai.FunctionDeclaration, error) {
	decls := make([]*genai.FunctionDeclaration, 0, len(tools))

	for _, t := range tools {
		decl, err := toFunctionDeclaration(t)
		if err != nil {
			return nil, fmt.Errorf("convert tool %s failed: %w", t.Name, err)
		}
		decls = append(decls, decl)
	}

	return decls, nil
}

func toFunctionDeclaration(t *mcp.Tool) (*genai.FunctionDeclaration, error) {
	decl := &genai.FunctionDeclaration{
		Name:        t.Name,
		Description: t.Description,
	}

	if t.InputSchema == nil {
		return decl, nil
	}

	// Round-trip the input schema through JSON rather than depending on
	// the schema library's internals.
	rawSchema, err := json.Marshal(t.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal failed: %w", err)
	}

	var schemaMap map[string]any
	if err := json.Unmarshal(rawSchema, &schemaMap); err != nil {
		return nil, fmt.Errorf("json.Unmarshal failed: %w", err)
	}

	decl.Parameters = toGenaiSchema(schemaMap)

	return decl, nil
}

func toGenaiSchema(schemaMap map[string]any) *genai.Schema {
	schema := &genai.Schema{
		Type: genaiType(schemaMap["type"]),
	}

	if desc, ok := schemaMap["description"].(string); ok {
		schema.Description = desc
	}

	if props, ok := schemaMap["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, prop := range props {
			propMap, ok := prop.(map[string]any)
			if !ok {
				continue
			}
			schema.Properties[name] = toGenaiSchema(propMap)
		}
	}

	if items, ok := schemaMap["items"].(map[string]any); ok {
		schema.Items = toGenaiSchema(items)
	}

	if required, ok := schemaMap["required"].([]any); ok {
		for _, field := range required {
			if name, ok := field.(string); ok {
				schema.Required = append(schema.Required, name)
			}
		}
	}

	return schema
}

func genaiType(v any) genai.Type {
	typeStr, _ := v.(string)

	switch typeStr {
	case "string":
		return genai.TypeString
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	default:
		return genai.TypeObject
	}
}
