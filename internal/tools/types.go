// Package tools exposes the weather operations as callable tools for an
// agent protocol. Tool definitions use a provider-agnostic JSON Schema
// representation; the transport layer serializes definitions and results to
// whatever wire format it speaks.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool defines the schema for a callable function as described to an agent.
type Tool struct {
	// Type specifies the type of tool, which is almost always "function".
	Type string `json:"type"`
	// Function holds the detailed definition of the function.
	Function Function `json:"function"`
}

// Function defines the name, description, and parameters of a callable tool.
type Function struct {
	// Name is the name of the function to be called (e.g., "get_weather").
	Name string `json:"name"`
	// Description explains what the function does; agents use it to decide
	// when to call the tool.
	Description string `json:"description"`
	// Parameters defines the arguments the function accepts, structured as a JSON Schema.
	Parameters JSONSchema `json:"parameters"`
}

// JSONSchema is a structured, type-safe representation of the JSON Schema
// subset used for tool parameters.
type JSONSchema struct {
	// Type defines the data type for a schema node (e.g., "object", "string", "number").
	Type string `json:"type"`
	// Description explains what a specific parameter is for.
	Description string `json:"description,omitempty"`
	// Properties describes the parameters of an object, keyed by parameter name.
	Properties map[string]*JSONSchema `json:"properties,omitempty"`
	// Required lists the parameter names that are mandatory.
	Required []string `json:"required,omitempty"`
}

// ToolExecutor is the contract every tool implements.
type ToolExecutor interface {
	// Definition returns the tool's schema as described to the agent.
	Definition() Tool

	// Execute runs the tool. Arguments arrive as a JSON string matching the
	// tool's parameter schema; the result is returned as a JSON string.
	Execute(arguments string) (string, error)
}

// NewFunctionTool creates a Tool with the correct "function" type.
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}
