// Package engine runs starlark scripts that shape flight paths.
package engine

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"

	"go.starlark.net/starlark"
)

// ComputeInputHash creates a hash of script inputs for cache keys
func ComputeInputHash(scriptName string, inputs map[string]interface{}) string {
	data := map[string]interface{}{
		"script": scriptName,
		"inputs": inputs,
	}
	jsonData, _ := json.Marshal(data)
	hash := sha256.Sum256(jsonData)
	return fmt.Sprintf("%x", hash)
}

// ExecuteStarlark executes a script with the inputs predeclared and returns
// the globals it defines as native Go values.
func ExecuteStarlark(threadName string, script string, inputs map[string]interface{}) (map[string]interface{}, error) {
	thread := &starlark.Thread{Name: threadName, Print: func(_ *starlark.Thread, msg string) { log.Printf("%s: %s", threadName, msg) }}

	predeclared := starlark.StringDict{}
	for k, v := range inputs {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", k, err)
		}
		predeclared[k] = val
	}

	resultGlobals, err := starlark.ExecFile(thread, threadName, script, predeclared)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for k, v := range resultGlobals {
		val, err := FromStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("global %s: %w", k, err)
		}
		out[k] = val
	}
	return out, nil
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

// FromStarlarkValue converts a script value to Go. Values with no Go
// counterpart, such as functions, convert to nil.
func FromStarlarkValue(v starlark.Value) (interface{}, error) {
	switch val := v.(type) {
	case starlark.String:
		return string(val), nil
	case starlark.Int:
		i, ok := val.Int64()
		if !ok || int64(int(i)) != i {
			return nil, fmt.Errorf("int %s out of range", val.String())
		}
		return int(i), nil
	case starlark.Float:
		return float64(val), nil
	case starlark.Bool:
		return bool(val), nil
	}
	return nil, nil
}
