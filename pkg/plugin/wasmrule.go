package plugin

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// defaultRunTimeout bounds a single texide_run invocation. Exceeding it is
// treated identically to a crash.
const defaultRunTimeout = 5 * time.Second

// runInput is the single JSON document written into guest memory for a
// texide_run call, bundling the ABI's three logical inputs
// (ast_json, source_text, path_or_none) into one buffer.
type runInput struct {
	AST    json.RawMessage `json:"ast"`
	Source string          `json:"source"`
	Path   string          `json:"path,omitempty"`
}

// wasmRule is one loaded, sandboxed rule module: its own wazero runtime,
// compiled module, and instantiated instance, isolated from every other
// loaded rule.
type wasmRule struct {
	manifest Manifest

	runtime wazero.Runtime
	module  api.Module
	timeout time.Duration
}

func loadWasmRule(ctx context.Context, path string, wasmBytes []byte) (*wasmRule, error) {
	runtime := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfig().WithCloseOnContextDone(true))

	if _, err := wasi_snapshot_preview1.Instantiate(ctx, runtime); err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("instantiate WASI for %s: %w", path, err)
	}

	compiled, err := runtime.CompileModule(ctx, wasmBytes)
	if err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("compile module %s: %w", path, err)
	}

	modCfg := wazero.NewModuleConfig().WithName(path)
	instance, err := runtime.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("instantiate module %s: %w", path, err)
	}

	r := &wasmRule{runtime: runtime, module: instance, timeout: defaultRunTimeout}

	manifestBytes, err := r.callManifest(ctx)
	if err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("read manifest from %s: %w", path, err)
	}
	manifest, err := parseManifest(manifestBytes)
	if err != nil {
		runtime.Close(ctx)
		return nil, fmt.Errorf("decode manifest from %s: %w", path, err)
	}
	r.manifest = manifest

	return r, nil
}

func (r *wasmRule) close(ctx context.Context) error {
	return r.runtime.Close(ctx)
}

func (r *wasmRule) callManifest(ctx context.Context) ([]byte, error) {
	fn := r.module.ExportedFunction("texide_manifest")
	if fn == nil {
		return nil, fmt.Errorf("module does not export texide_manifest")
	}
	results, err := fn.Call(ctx)
	if err != nil {
		return nil, err
	}
	if len(results) != 2 {
		return nil, fmt.Errorf("texide_manifest: expected 2 results, got %d", len(results))
	}
	ptr, size := uint32(results[0]), uint32(results[1])
	return r.readMemory(ptr, size)
}

// run invokes texide_run with a fresh, isolated input buffer and decodes
// its diagnostic output. A panic propagating out of the wazero call is
// itself recovered by the caller (Registry.invokeGuarded).
func (r *wasmRule) run(ctx context.Context, astJSON json.RawMessage, source, path string) ([]Diagnostic, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	input, err := json.Marshal(runInput{AST: astJSON, Source: source, Path: path})
	if err != nil {
		return nil, fmt.Errorf("encode rule input: %w", err)
	}

	inputPtr, err := r.alloc(ctx, len(input))
	if err != nil {
		return nil, fmt.Errorf("alloc guest input buffer: %w", err)
	}
	if err := r.writeMemory(inputPtr, input); err != nil {
		return nil, fmt.Errorf("write guest input buffer: %w", err)
	}

	fn := r.module.ExportedFunction("texide_run")
	if fn == nil {
		return nil, fmt.Errorf("module does not export texide_run")
	}
	results, err := fn.Call(ctx, uint64(inputPtr), uint64(len(input)))
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("texide_run: expected 1 packed result, got %d", len(results))
	}

	packed := results[0]
	outPtr := uint32(packed >> 32)
	outLen := uint32(packed)

	raw, err := r.readMemory(outPtr, outLen)
	if err != nil {
		return nil, fmt.Errorf("read guest output buffer: %w", err)
	}

	var wire []wireDiagnostic
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decode rule output: %w", err)
	}
	out := make([]Diagnostic, len(wire))
	for i, d := range wire {
		out[i] = d.toDiagnostic()
	}
	return out, nil
}

func (r *wasmRule) alloc(ctx context.Context, size int) (uint32, error) {
	fn := r.module.ExportedFunction("texide_alloc")
	if fn == nil {
		return 0, fmt.Errorf("module does not export texide_alloc")
	}
	results, err := fn.Call(ctx, uint64(size))
	if err != nil {
		return 0, err
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("texide_alloc: expected 1 result, got %d", len(results))
	}
	return uint32(results[0]), nil
}

func (r *wasmRule) writeMemory(ptr uint32, data []byte) error {
	if !r.module.Memory().Write(ptr, data) {
		return fmt.Errorf("write out of bounds at %d, len %d", ptr, len(data))
	}
	return nil
}

func (r *wasmRule) readMemory(ptr, size uint32) ([]byte, error) {
	buf, ok := r.module.Memory().Read(ptr, size)
	if !ok {
		return nil, fmt.Errorf("read out of bounds at %d, len %d", ptr, size)
	}
	// Copy out: the guest's linear memory may be reused by a later call.
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}
