// Package graph loads user-supplied graph description files for submission
// to the planarity service.
package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// Node is one vertex of the input graph, in the layout the service expects.
type Node struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Edge connects two node IDs.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Payload is a decoded graph file. The raw bytes are kept exactly as read
// so the request body matches the file byte for byte; the node and edge
// lists are best-effort extractions used only for display summaries.
type Payload struct {
	raw   json.RawMessage
	Nodes []Node
	Edges []Edge
}

// DecodeError reports a graph file that is not a valid JSON object.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode graph: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ReadFile loads and decodes the graph file at path. Read failures are
// returned as-is; malformed content is returned as a *DecodeError.
func ReadFile(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses data as a JSON object. The field schema belongs to the
// service and is not validated here; only the top-level shape is checked.
// Node and edge lists are extracted when they have the expected shape so
// callers can show a summary.
func Decode(data []byte) (*Payload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &DecodeError{Err: err}
	}

	p := &Payload{raw: append(json.RawMessage(nil), data...)}
	if raw, ok := fields["nodes"]; ok {
		var nodes []Node
		if err := json.Unmarshal(raw, &nodes); err == nil {
			p.Nodes = nodes
		}
	}
	if raw, ok := fields["edges"]; ok {
		var edges []Edge
		if err := json.Unmarshal(raw, &edges); err == nil {
			p.Edges = edges
		}
	}
	return p, nil
}

// JSON returns the exact bytes read from the file, for use as the request
// body. The payload is never re-encoded: what was read is what is sent.
func (p *Payload) JSON() json.RawMessage { return p.raw }

// Summary describes the payload in one short line.
func (p *Payload) Summary() string {
	return fmt.Sprintf("%d nodes, %d edges", len(p.Nodes), len(p.Edges))
}
