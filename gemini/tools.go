package gemini

import (
	"fmt"
	"sync"

	"google.golang.org/genai"

	"saes/study-app/core"
)

var (
	registry     *ToolRegistry
	registryOnce sync.Once
)

// ToolRegistry maps a capability to the SDK tool that provides it.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[core.Capability]func() *genai.Tool
}

func GetToolRegistry() *ToolRegistry {
	registryOnce.Do(func() {
		registry = &ToolRegistry{tools: make(map[core.Capability]func() *genai.Tool)}
		registerInbuiltTools(registry)
	})
	return registry
}

func registerInbuiltTools(tr *ToolRegistry) {
	tr.RegisterTool(core.CapabilityWebSearch, func() *genai.Tool {
		return &genai.Tool{GoogleSearch: &genai.GoogleSearch{}}
	})
}

func (tr *ToolRegistry) RegisterTool(capability core.Capability, build func() *genai.Tool) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.tools[capability] = build
}

// GetTool returns a fresh tool value for capability.
func (tr *ToolRegistry) GetTool(capability core.Capability) (*genai.Tool, error) {
	tr.mu.RLock()
	build, ok := tr.tools[capability]
	tr.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("tool %s not found", capability)
	}
	return build(), nil
}
