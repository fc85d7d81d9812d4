package engine

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// ============================================================================
// CHART BUILDER TESTS
// ============================================================================

func TestAssembleEmptyShelf(t *testing.T) {
	ds := loadSample(t)
	if spec := Assemble(ds, MarkBar, Shelf{}); spec != nil {
		t.Errorf("expected no spec, got %+v", spec)
	}
}

func TestAssembleColorAloneIsNotEnough(t *testing.T) {
	ds := loadSample(t)
	s, _ := Shelf{}.SetField(ds, ChannelColor, "city")

	if spec := Assemble(ds, MarkPoint, s); spec != nil {
		t.Errorf("color-only shelf should not produce a spec, got %+v", spec.Encoding)
	}
}

func TestAssembleSingleAxis(t *testing.T) {
	ds := loadSample(t)

	xOnly, _ := Shelf{}.SetField(ds, ChannelX, "age")
	spec := Assemble(ds, MarkBar, xOnly)
	if spec == nil {
		t.Fatal("x alone should produce a spec")
	}
	want := map[Channel]Field{ChannelX: {Name: "age", Type: Quantitative}}
	if !reflect.DeepEqual(spec.Encoding, want) {
		t.Errorf("encoding = %v, want %v", spec.Encoding, want)
	}

	yOnly, _ := Shelf{}.SetField(ds, ChannelY, "score")
	spec = Assemble(ds, MarkBar, yOnly)
	if spec == nil || len(spec.Encoding) != 1 {
		t.Fatalf("y alone should produce a one-channel spec, got %+v", spec)
	}
}

func TestAssembleFullShelf(t *testing.T) {
	ds := loadSample(t)

	s, _ := Shelf{}.SetField(ds, ChannelX, "age")
	s, _ = s.SetField(ds, ChannelY, "score")
	s, _ = s.SetField(ds, ChannelColor, "city")
	s, _ = s.SetType(ChannelX, Ordinal)

	spec := Assemble(ds, MarkLine, s)
	if spec == nil {
		t.Fatal("expected a spec")
	}

	if spec.Schema != SchemaURL || spec.Description != SpecDescription {
		t.Errorf("header = %q / %q", spec.Schema, spec.Description)
	}
	if spec.Mark != MarkLine {
		t.Errorf("mark = %s, want line", spec.Mark)
	}
	if spec.Width != 400 || spec.Height != 300 {
		t.Errorf("size = %dx%d, want 400x300", spec.Width, spec.Height)
	}
	if spec.Data.Values != ds {
		t.Error("spec must carry the dataset by reference")
	}

	want := map[Channel]Field{
		ChannelX:     {Name: "age", Type: Ordinal},
		ChannelY:     {Name: "score", Type: Quantitative},
		ChannelColor: {Name: "city", Type: Nominal},
	}
	if !reflect.DeepEqual(spec.Encoding, want) {
		t.Errorf("encoding = %v, want %v", spec.Encoding, want)
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	ds := loadSample(t)
	s, _ := Shelf{}.SetField(ds, ChannelX, "city")
	s, _ = s.SetField(ds, ChannelY, "score")

	a := Assemble(ds, MarkArea, s)
	b := Assemble(ds, MarkArea, s)
	if a == b {
		t.Fatal("Assemble should build a fresh spec each call")
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("specs differ:\n%+v\n%+v", a, b)
	}
}

func TestSpecJSONShape(t *testing.T) {
	ds := loadSample(t)
	s, _ := Shelf{}.SetField(ds, ChannelX, "name")
	s, _ = s.SetField(ds, ChannelY, "score")

	b, err := json.Marshal(Assemble(ds, MarkBar, s))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if doc["$schema"] != SchemaURL {
		t.Errorf("$schema = %v", doc["$schema"])
	}
	if doc["mark"] != "bar" {
		t.Errorf("mark = %v", doc["mark"])
	}

	values := doc["data"].(map[string]interface{})["values"].([]interface{})
	if len(values) != 8 {
		t.Errorf("inline values = %d, want 8", len(values))
	}
	first := values[0].(map[string]interface{})
	if first["name"] != "Alice" || first["age"] != float64(25) {
		t.Errorf("first row = %v", first)
	}

	enc := doc["encoding"].(map[string]interface{})
	x := enc["x"].(map[string]interface{})
	if x["field"] != "name" || x["type"] != "nominal" {
		t.Errorf("x = %v", x)
	}
	if _, ok := enc["color"]; ok {
		t.Error("empty color slot must not appear in the encoding")
	}
	if !strings.Contains(string(b), `"width":400`) {
		t.Errorf("width missing in %s", b)
	}
}
