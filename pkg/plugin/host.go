package plugin

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/texide/texide/pkg/ast"
)

// Registry loads rule modules and dispatches an AST + source against all of
// them, in load order: load-time registration, duplicate-name rejection,
// and load-order listing over externally-loaded WASM modules.
//
// A Registry is safe for concurrent RunAllRules calls once loading is
// complete: the registry lock serializes them, since every call shares the
// same module instances. LoadRule itself is not safe to call concurrently
// with other Registry methods.
type Registry struct {
	mu    sync.Mutex
	rules []*wasmRule
	byName map[string]int
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// LoadRule compiles and instantiates the WASM module at path, validates its
// manifest, and registers it. Duplicate names are refused.
func (reg *Registry) LoadRule(ctx context.Context, path string) error {
	wasmBytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rule module %s: %w", path, err)
	}

	r, err := loadWasmRule(ctx, path, wasmBytes)
	if err != nil {
		return err
	}
	if r.manifest.Name == "" {
		r.close(ctx)
		return fmt.Errorf("rule module %s: manifest is missing a name", path)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if _, exists := reg.byName[r.manifest.Name]; exists {
		r.close(ctx)
		return fmt.Errorf("duplicate rule name %q (module %s)", r.manifest.Name, path)
	}
	reg.byName[r.manifest.Name] = len(reg.rules)
	reg.rules = append(reg.rules, r)
	return nil
}

// LoadedRules returns the names of every registered rule, in load order.
func (reg *Registry) LoadedRules() []string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	names := make([]string, len(reg.rules))
	for i, r := range reg.rules {
		names[i] = r.manifest.Name
	}
	return names
}

// GetManifest returns the manifest for a loaded rule by name.
func (reg *Registry) GetManifest(name string) (Manifest, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	idx, ok := reg.byName[name]
	if !ok {
		return Manifest{}, false
	}
	return reg.rules[idx].manifest, true
}

// RuleVersions returns the current rule name → version map, used by the
// cache manager's validity predicate.
func (reg *Registry) RuleVersions() map[string]string {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	out := make(map[string]string, len(reg.rules))
	for _, r := range reg.rules {
		out[r.manifest.Name] = r.manifest.Version
	}
	return out
}

// Close releases every loaded module's runtime.
func (reg *Registry) Close(ctx context.Context) error {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	var firstErr error
	for _, r := range reg.rules {
		if err := r.close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RunAllRules serializes root and invokes every loaded rule in load order,
// collecting diagnostics. A rule that panics, traps, or times out yields a
// single host-level crash diagnostic in its place and does not abort the
// batch.
func (reg *Registry) RunAllRules(ctx context.Context, root *ast.TxtNode, source, path string) ([]Diagnostic, error) {
	astJSON, err := MarshalAST(root)
	if err != nil {
		return nil, fmt.Errorf("serialize AST: %w", err)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	var diagnostics []Diagnostic
	for _, r := range reg.rules {
		diagnostics = append(diagnostics, reg.invokeGuarded(ctx, r, json.RawMessage(astJSON), source, path)...)
	}
	return diagnostics, nil
}

// invokeGuarded recovers a panicking rule invocation into a crash
// diagnostic, matching the isolation/continuation guarantee a native wazero
// trap error already gets from wasmRule.run's own error return.
func (reg *Registry) invokeGuarded(ctx context.Context, r *wasmRule, astJSON json.RawMessage, source, path string) (result []Diagnostic) {
	defer func() {
		if rec := recover(); rec != nil {
			result = []Diagnostic{crashDiagnostic(r.manifest.Name, fmt.Errorf("%v", rec))}
		}
	}()

	diags, err := r.run(ctx, astJSON, source, path)
	if err != nil {
		return []Diagnostic{crashDiagnostic(r.manifest.Name, err)}
	}
	return diags
}
