// docs/docs_test.go
package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDocListsPaths(t *testing.T) {
	var spec struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &spec); err != nil {
		t.Fatalf("swagger doc is not valid JSON: %v", err)
	}
	if spec.BasePath != "/api/v1" {
		t.Errorf("basePath: got %q, want /api/v1", spec.BasePath)
	}
	if len(spec.Paths) == 0 {
		t.Fatal("swagger doc lists no paths")
	}

	for _, p := range []string{
		"/printer/keystrokes",
		"/printer/lines",
		"/printer/toggles/{feature}",
		"/printer/settings/{name}",
		"/printer/commands",
		"/printer/defaults",
		"/printer/address",
		"/printer/line-length",
		"/printer/session",
		"/discovery/scan",
		"/transmissions",
		"/health",
	} {
		if _, ok := spec.Paths[p]; !ok {
			t.Errorf("missing path %s", p)
		}
	}
}
