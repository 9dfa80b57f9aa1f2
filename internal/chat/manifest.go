// Package chat bridges player conversation with the location NPCs to
// the LLM layer, exposing the location's actions as callable tools.
package chat

import (
	"github.com/mrjones-game/life-server/internal/actions"
	"github.com/mrjones-game/life-server/internal/infra/ai"
)

// Manifest builds the tool definitions for one location at the given
// wall-clock hour. Tool names are the action keys; the set is scoped
// to the location, so the model can never reach an action the player
// could not click. A closed location yields no tools.
func Manifest(catalog *actions.Catalog, location string, hour int) []ai.ToolDefinition {
	defs := catalog.List(location, hour)
	if len(defs) == 0 {
		return nil
	}

	tools := make([]ai.ToolDefinition, 0, len(defs))
	for _, d := range defs {
		tools = append(tools, ai.ToolDefinition{
			Name:        d.Key,
			Description: d.Description,
			InputSchema: paramSchema(d.Params),
		})
	}
	return tools
}

// paramSchema converts declared action parameters to a JSON Schema
// object, the format both provider APIs take.
func paramSchema(params []actions.Param) map[string]interface{} {
	properties := map[string]interface{}{}
	var required []string

	for _, p := range params {
		prop := map[string]interface{}{
			"type":        p.Type,
			"description": p.Description,
		}
		if p.Minimum != nil {
			prop["minimum"] = *p.Minimum
		}
		if p.Maximum != nil {
			prop["maximum"] = *p.Maximum
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
