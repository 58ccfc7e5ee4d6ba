package bookings

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Tool is one item of the inventory handed over with the car.
type Tool struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity,omitempty"`
	Condition string `json:"condition,omitempty"`
}

type entryKind int

const (
	entryGarbage entryKind = iota
	entryTool
	entryLegacy
)

// toolEntry is one element of a tools payload as found on the wire or in
// older rows: a proper object, a JSON-encoded string wrapping one, or junk.
type toolEntry struct {
	kind entryKind
	tool Tool
	raw  string
}

func classifyEntry(raw json.RawMessage) toolEntry {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return toolEntry{kind: entryGarbage}
	}

	switch raw[0] {
	case '{':
		var t Tool
		if err := json.Unmarshal(raw, &t); err != nil {
			return toolEntry{kind: entryGarbage}
		}
		t.Name = strings.TrimSpace(t.Name)
		t.Condition = strings.TrimSpace(t.Condition)
		if t.Name == "" || t.Quantity < 0 {
			return toolEntry{kind: entryGarbage}
		}
		return toolEntry{kind: entryTool, tool: t}
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return toolEntry{kind: entryGarbage}
		}
		return toolEntry{kind: entryLegacy, raw: s}
	default:
		return toolEntry{kind: entryGarbage}
	}
}

// SanitizeTools normalizes a tools payload into valid entries. It accepts an
// array of tool objects or the legacy form where the array, or its elements,
// were stored as JSON strings. Everything else is dropped.
func SanitizeTools(raw json.RawMessage) []Tool {
	return sanitize(raw, 0)
}

func sanitize(raw json.RawMessage, depth int) []Tool {
	out := []Tool{}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || depth > 2 {
		return out
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return out
		}
		return sanitize(json.RawMessage(inner), depth+1)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return out
	}

	for _, el := range elems {
		e := classifyEntry(el)
		switch e.kind {
		case entryTool:
			out = append(out, e.tool)
		case entryLegacy:
			if inner := classifyEntry(json.RawMessage(e.raw)); inner.kind == entryTool {
				out = append(out, inner.tool)
			}
		}
	}
	return out
}

// CleanTools re-applies the tool shape rules to already decoded values.
func CleanTools(tools []Tool) []Tool {
	out := make([]Tool, 0, len(tools))
	for _, t := range tools {
		t.Name = strings.TrimSpace(t.Name)
		t.Condition = strings.TrimSpace(t.Condition)
		if t.Name == "" || t.Quantity < 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}
