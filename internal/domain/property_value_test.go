package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAbsentValueProjections(t *testing.T) {
	value := AbsentValue()

	if !value.IsAbsent() {
		t.Fatalf("expected absent value")
	}
	if got := value.Display(); got != "" {
		t.Fatalf("expected empty display, got %q", got)
	}
	if got := value.Export(); got != "" {
		t.Fatalf("expected empty export value, got %#v", got)
	}
}

func TestScalarValueProjectionsAgree(t *testing.T) {
	value := ScalarValue("prop_physics")

	if got := value.Display(); got != "prop_physics" {
		t.Fatalf("unexpected display %q", got)
	}
	if got := value.Export(); got != "prop_physics" {
		t.Fatalf("unexpected export value %#v", got)
	}
}

func TestArrayValueDualProjection(t *testing.T) {
	value := ArrayValue("a", "b", "c")

	if got := value.Display(); got != "a b c" {
		t.Fatalf("expected space-joined display, got %q", got)
	}
	exported, ok := value.Export().([]string)
	if !ok {
		t.Fatalf("expected []string export value, got %#v", value.Export())
	}
	if !reflect.DeepEqual(exported, []string{"a", "b", "c"}) {
		t.Fatalf("expected ordered export sequence, got %#v", exported)
	}
}

func TestArrayValueExportIsACopy(t *testing.T) {
	value := ArrayValue("a", "b")
	exported := value.Export().([]string)
	exported[0] = "mutated"

	if got := value.Display(); got != "a b" {
		t.Fatalf("export copy mutated the value, display %q", got)
	}
}

func TestValueOfConvertsRawShapes(t *testing.T) {
	if got := ValueOf(nil); !got.IsAbsent() {
		t.Fatalf("expected nil to map to absent, got %#v", got)
	}
	if got := ValueOf("door01").Display(); got != "door01" {
		t.Fatalf("unexpected string conversion %q", got)
	}
	if got := ValueOf(true).Display(); got != "true" {
		t.Fatalf("unexpected bool conversion %q", got)
	}
	if got := ValueOf(json.Number("100")).Display(); got != "100" {
		t.Fatalf("unexpected number conversion %q", got)
	}
	if got := ValueOf([]any{json.Number("1"), json.Number("2"), json.Number("3")}); got.Kind() != PropertyArray {
		t.Fatalf("expected array kind, got %v", got.Kind())
	} else if display := got.Display(); display != "1 2 3" {
		t.Fatalf("unexpected array display %q", display)
	}
	if got := ValueOf([]string{"x", "y"}).Display(); got != "x y" {
		t.Fatalf("unexpected string slice display %q", got)
	}
}

func TestValueOfNeverPanicsOnOddValues(t *testing.T) {
	if got := ValueOf(struct{ X int }{X: 1}); got.Kind() != PropertyScalar {
		t.Fatalf("expected scalar degradation, got kind %v", got.Kind())
	}
	if got := ValueOf(map[string]any{"a": 1}).Display(); got == "" {
		t.Fatalf("expected best-effort stringification of map values")
	}
}
