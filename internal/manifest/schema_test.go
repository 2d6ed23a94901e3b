package manifest

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchemaShape(t *testing.T) {
	b, err := MarshalSchema(Schema())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	if doc["type"] != "array" {
		t.Fatalf("type = %v, want array", doc["type"])
	}
	if !strings.Contains(string(b), `"uniqueItems": true`) {
		t.Fatalf("uniqueItems missing:\n%s", b)
	}
	items, ok := doc["items"].(map[string]any)
	if !ok || items["type"] != "string" {
		t.Fatalf("items = %v, want string schema", doc["items"])
	}
}
