package resume

import (
	"encoding/json"
	"testing"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello"},
		{"int", int64(2020), "2020"},
		{"float", 3.8, "3.8"},
		{"integral float", 4.0, "4"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"list", []any{"a"}, ""},
		{"mapping", &Mapping{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMappingGetSet(t *testing.T) {
	m := &Mapping{}
	m.Set("a", int64(1))
	m.Set("b", "two")
	m.Set("a", int64(3))

	if got := m.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	v, ok := m.Get("a")
	if !ok {
		t.Fatal("Get(a) reported absent")
	}
	if v.(int64) != 3 {
		t.Errorf("Get(a) = %v, want 3 after replace", v)
	}
	keys := m.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("Keys() = %v, want [a b]", keys)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
	if !m.Has("b") {
		t.Error("Has(b) = false, want true")
	}
}

func TestMappingNilSafe(t *testing.T) {
	var m *Mapping
	if _, ok := m.Get("x"); ok {
		t.Error("nil mapping reported key present")
	}
	if m.Len() != 0 {
		t.Error("nil mapping has nonzero length")
	}
	if m.Keys() != nil {
		t.Error("nil mapping returned keys")
	}
}

func TestMappingMarshalJSONOrder(t *testing.T) {
	m := &Mapping{}
	m.Set("zebra", int64(1))
	m.Set("alpha", &Mapping{Pairs: []Pair{
		{Key: "z", Value: "v"},
		{Key: "a", Value: []any{int64(1), "x"}},
	}})

	got, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"zebra":1,"alpha":{"z":"v","a":[1,"x"]}}`
	if string(got) != want {
		t.Errorf("MarshalJSON = %s, want %s", got, want)
	}
}

func TestIsScalar(t *testing.T) {
	if !IsScalar("x") || !IsScalar(int64(1)) || !IsScalar(nil) {
		t.Error("scalar values reported as non-scalar")
	}
	if IsScalar([]any{}) || IsScalar(&Mapping{}) {
		t.Error("containers reported as scalar")
	}
}
