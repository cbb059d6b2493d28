package wire

import (
	"testing"
)

func TestHashBytes(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{
			name:  "empty input",
			input: nil,
			want:  "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:  "abc",
			input: []byte("abc"),
			want:  "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HashBytes(tt.input); got != tt.want {
				t.Errorf("HashBytes() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHashBytes_Format(t *testing.T) {
	got := HashBytes([]byte("payload"))
	if len(got) != 64 {
		t.Errorf("digest length = %d, want 64", len(got))
	}
	for _, r := range got {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Errorf("digest contains non-lowercase-hex rune %q", r)
		}
	}
}

func TestCanonicalizeRecord_OrderIndependent(t *testing.T) {
	a := map[string]any{"trace_id": "123", "request_id": "456", "payload_hash": "abc"}
	b := map[string]any{"payload_hash": "abc", "request_id": "456", "trace_id": "123"}

	ba, err := CanonicalizeRecord(a)
	if err != nil {
		t.Fatalf("CanonicalizeRecord(a) error: %v", err)
	}
	bb, err := CanonicalizeRecord(b)
	if err != nil {
		t.Fatalf("CanonicalizeRecord(b) error: %v", err)
	}
	if string(ba) != string(bb) {
		t.Errorf("canonical bytes differ:\n a=%s\n b=%s", ba, bb)
	}
}

func TestCanonicalizeRecord_SortedCompact(t *testing.T) {
	got, err := CanonicalizeRecord(map[string]any{"b": 1, "a": "x", "c": true})
	if err != nil {
		t.Fatalf("CanonicalizeRecord error: %v", err)
	}
	want := `{"a":"x","b":1,"c":true}`
	if string(got) != want {
		t.Errorf("canonical bytes = %s, want %s", got, want)
	}
}

func TestCanonicalizeRecord_Unserializable(t *testing.T) {
	_, err := CanonicalizeRecord(map[string]any{"ch": make(chan int)})
	if err == nil {
		t.Error("expected error for unserializable value, got nil")
	}
}

func TestHashRecord_Deterministic(t *testing.T) {
	record := map[string]any{"k1": "v1", "k2": 2}
	first, err := HashRecord(record)
	if err != nil {
		t.Fatalf("HashRecord error: %v", err)
	}
	second, err := HashRecord(map[string]any{"k2": 2, "k1": "v1"})
	if err != nil {
		t.Fatalf("HashRecord error: %v", err)
	}
	if first != second {
		t.Errorf("hashes differ: %q vs %q", first, second)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input Value
		want  bool
	}{
		{name: "string", input: "x", want: true},
		{name: "nil", input: nil, want: true},
		{name: "nested map", input: map[string]any{"a": []any{1, "b", nil}}, want: true},
		{name: "struct", input: struct{ X int }{1}, want: false},
		{name: "map with bad value", input: map[string]any{"a": struct{}{}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.input); got != tt.want {
				t.Errorf("Valid(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	orig := map[string]any{"a": []any{1, 2}, "b": map[string]any{"c": "d"}}
	cp := Clone(orig).(map[string]any)

	cp["b"].(map[string]any)["c"] = "mutated"
	cp["a"].([]any)[0] = 99

	if orig["b"].(map[string]any)["c"] != "d" {
		t.Error("mutating clone affected original map")
	}
	if orig["a"].([]any)[0] != 1 {
		t.Error("mutating clone affected original slice")
	}
}
