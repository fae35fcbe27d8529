package extract

import "testing"

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"idempotent", `{"a":1}`, stripCodeFences(stripCodeFences(`{"a":1}`))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.in); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripTrailingCommas(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"object", `{"a":1,}`, `{"a":1}`},
		{"array", `[1,2,]`, `[1,2]`},
		{"with whitespace", "{\"a\":1,\n  }", "{\"a\":1\n  }"},
		{"comma inside string kept", `{"a":",}"}`, `{"a":",}"}`},
		{"already clean", `{"a":1}`, `{"a":1}`},
		{"nested", `{"a":[1,],}`, `{"a":[1]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripTrailingCommas(tt.in); got != tt.want {
				t.Errorf("stripTrailingCommas(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeSingleQuotes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keys and values", `{'a': 'b'}`, `{"a": "b"}`},
		{"mixed with double quotes", `{"a": 'b'}`, `{"a": "b"}`},
		{"apostrophe inside double-quoted string kept", `{"a": "it's"}`, `{"a": "it's"}`},
		{"ambiguous run untouched", `{'a': 'say "hi"'}`, `{'a': 'say "hi"'}`},
		{"no single quotes", `{"a": 1}`, `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeSingleQuotes(tt.in); got != tt.want {
				t.Errorf("normalizeSingleQuotes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBraceCandidate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"plain object", `{"a":1}`, `{"a":1}`, true},
		{"surrounded by prose", `before {"a":1} after`, `{"a":1}`, true},
		{"nested", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`, true},
		{"brace in string", `{"a":"}"}`, `{"a":"}"}`, true},
		{"escaped quote in string", `{"a":"\"}"}`, `{"a":"\"}"}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"no brace", `nothing here`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := braceCandidate(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("braceCandidate(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMarkerCandidate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"both markers", "===JSON_START=== {\"a\":1} ===JSON_END===", `{"a":1}`, true},
		{"missing end", "===JSON_START=== {\"a\":1}", "", false},
		{"missing start", "{\"a\":1} ===JSON_END===", "", false},
		{"empty span", "===JSON_START=== ===JSON_END===", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := markerCandidate(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("markerCandidate(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
