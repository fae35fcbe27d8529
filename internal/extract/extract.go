// README: Resilient extraction of a trip plan from unreliable model output.
package extract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"wander/internal/trip"
)

// Markers the prompt instructs the model to wrap its JSON payload in.
const (
	JSONStartMarker = "===JSON_START==="
	JSONEndMarker   = "===JSON_END==="
)

// ReasonCode classifies a fatal extraction failure.
type ReasonCode string

const (
	ReasonNoCandidate   ReasonCode = "no_candidate_found"
	ReasonParseError    ReasonCode = "parse_error"
	ReasonMissingFields ReasonCode = "missing_required_fields"
)

var (
	ErrNoCandidate   = errors.New("no JSON candidate found in response text")
	ErrParse         = errors.New("candidate failed to parse as JSON")
	ErrMissingFields = errors.New("parsed object lacks required plan fields")
)

// Failure is the typed fatal outcome. It always carries the original raw
// text so the caller can surface it to an operator instead of dropping it.
type Failure struct {
	Reason ReasonCode
	Raw    string
	err    error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("extraction failed (%s): %v", f.Reason, f.err)
}

func (f *Failure) Unwrap() error { return f.err }

// Result is a successful extraction. Raw and Candidate are preserved so the
// caller can expose the intermediates when a debug flag is set.
type Result struct {
	Plan        *trip.Plan
	Raw         string
	Candidate   string
	Diagnostics []string
}

// strategy locates a JSON candidate inside free text. Strategies are tried in
// order and the first candidate that parses wins.
type strategy struct {
	name string
	find func(text string) (candidate string, ok bool)
}

var strategies = []strategy{
	{name: "markers", find: markerCandidate},
	{name: "balanced_braces", find: braceCandidate},
}

// Extract turns an arbitrary model-response blob into a validated plan.
// Model output is unreliable rather than malicious, so the pipeline favours
// recovery over rejection. It never invents data though: every recovered
// field traces to literal text in the response.
func Extract(raw string) (*Result, error) {
	text := strings.TrimSpace(stripCodeFences(strings.TrimSpace(raw)))

	var (
		sawCandidate bool
		lastParseErr error
	)

	for _, s := range strategies {
		candidate, ok := s.find(text)
		if !ok {
			continue
		}
		sawCandidate = true

		doc, err := parseWithRepairs(candidate)
		if err != nil {
			lastParseErr = fmt.Errorf("%s: %w", s.name, err)
			continue
		}

		plan, diags, err := buildPlan(doc)
		if err != nil {
			return nil, &Failure{Reason: ReasonMissingFields, Raw: raw, err: err}
		}
		return &Result{Plan: plan, Raw: raw, Candidate: candidate, Diagnostics: diags}, nil
	}

	if !sawCandidate {
		return nil, &Failure{Reason: ReasonNoCandidate, Raw: raw, err: ErrNoCandidate}
	}
	return nil, &Failure{Reason: ReasonParseError, Raw: raw, err: fmt.Errorf("%w: %v", ErrParse, lastParseErr)}
}

// markerCandidate takes everything strictly between the start and end markers.
// This is the primary path: the prompt explicitly asks the model to emit them.
func markerCandidate(text string) (string, bool) {
	start := strings.Index(text, JSONStartMarker)
	if start == -1 {
		return "", false
	}
	rest := text[start+len(JSONStartMarker):]
	end := strings.Index(rest, JSONEndMarker)
	if end == -1 {
		return "", false
	}
	candidate := strings.TrimSpace(rest[:end])
	if candidate == "" {
		return "", false
	}
	return candidate, true
}

// braceCandidate scans from the first '{' tracking nesting depth until it
// returns to zero. Braces inside string literals are not counted, so prose or
// values containing '{' do not break the span.
func braceCandidate(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// parseWithRepairs attempts a direct parse, then reapplies the parse after
// each normalization pass. Passes are idempotent and only reached when the
// previous attempt failed.
func parseWithRepairs(candidate string) (map[string]any, error) {
	current := candidate
	if doc, err := parseObject(current); err == nil {
		return doc, nil
	}

	var lastErr error
	for _, r := range repairs {
		repaired := r.apply(current)
		if repaired == current {
			continue
		}
		current = repaired
		doc, err := parseObject(current)
		if err == nil {
			return doc, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		// No repair changed anything; report the direct parse error.
		_, lastErr = parseObject(candidate)
	}
	return nil, lastErr
}

func parseObject(s string) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
