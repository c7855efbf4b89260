package safejson_test

import (
	"strings"
	"testing"

	"github.com/alan-mat/exago/internal/safejson"
)

func TestStringPlainValues(t *testing.T) {
	got := safejson.String(map[string]any{"numResults": 10})
	if got != `{"numResults":10}` {
		t.Errorf("invalid rendering of a plain map, got '%s'", got)
	}

	if safejson.String(nil) != "null" {
		t.Errorf("invalid rendering of nil, got '%s'", safejson.String(nil))
	}

	if safejson.String([]string{"a", "b"}) != `["a","b"]` {
		t.Errorf("invalid rendering of a slice, got '%s'", safejson.String([]string{"a", "b"}))
	}
}

func TestStringCyclicMap(t *testing.T) {
	m := map[string]any{"query": "q"}
	m["self"] = m

	got := safejson.String(m)
	if !strings.Contains(got, "<cycle>") {
		t.Errorf("cyclic map was not cut with a placeholder, got '%s'", got)
	}
	if !strings.Contains(got, `"query":"q"`) {
		t.Errorf("non-cyclic fields must still render, got '%s'", got)
	}
}

func TestStringKeepsAngleBrackets(t *testing.T) {
	got := safejson.String(map[string]any{"q": "<b> & </b>"})
	if got != `{"q":"<b> & </b>"}` {
		t.Errorf("markup characters must render literally, got '%s'", got)
	}
}

type node struct {
	Name string
	Next *node
}

func TestStringCyclicStruct(t *testing.T) {
	a := &node{Name: "a"}
	b := &node{Name: "b", Next: a}
	a.Next = b

	got := safejson.String(a)
	if !strings.Contains(got, "<cycle>") {
		t.Errorf("pointer cycle was not cut with a placeholder, got '%s'", got)
	}
	if !strings.Contains(got, `"Name":"a"`) || !strings.Contains(got, `"Name":"b"`) {
		t.Errorf("both nodes should render once, got '%s'", got)
	}
}

func TestStringSharedReference(t *testing.T) {
	shared := map[string]any{"k": "v"}
	root := map[string]any{"first": shared, "second": shared}

	got := safejson.String(root)
	if strings.Contains(got, "<cycle>") {
		t.Errorf("a shared non-cyclic value is not a cycle, got '%s'", got)
	}
	if strings.Count(got, `"k":"v"`) != 2 {
		t.Errorf("shared value should render in both places, got '%s'", got)
	}
}

func TestStringUnserializableValues(t *testing.T) {
	got := safejson.String(map[string]any{"fn": func() {}, "ch": make(chan int)})
	if got == "" {
		t.Fatal("rendering must never produce an empty string")
	}
	if !strings.Contains(got, "func()") || !strings.Contains(got, "chan int") {
		t.Errorf("unserializable values should fall back to their type name, got '%s'", got)
	}
}
