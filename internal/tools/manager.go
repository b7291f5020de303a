package tools

import (
	"errors"
	"fmt"
)

// ErrUnknownTool indicates a call to a tool name that is not registered.
var ErrUnknownTool = errors.New("unknown tool")

// ErrInvalidArguments indicates tool arguments that fail to decode or validate.
var ErrInvalidArguments = errors.New("invalid tool arguments")

// Manager holds a registry of all available tools.
type Manager struct {
	tools map[string]ToolExecutor
}

func NewManager() *Manager {
	return &Manager{
		tools: make(map[string]ToolExecutor),
	}
}

// Register adds a tool to the registry under its definition name.
func (m *Manager) Register(tool ToolExecutor) {
	name := tool.Definition().Function.Name
	m.tools[name] = tool
}

// Definitions returns all registered tool definitions.
func (m *Manager) Definitions() []Tool {
	defs := make([]Tool, 0, len(m.tools))
	for _, tool := range m.tools {
		defs = append(defs, tool.Definition())
	}
	return defs
}

// Execute dispatches a call to the named tool with the given JSON arguments.
func (m *Manager) Execute(name, arguments string) (string, error) {
	tool, ok := m.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool.Execute(arguments)
}
