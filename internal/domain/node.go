package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NodeRef identifies a visualization node on the remote server. The id is
// the server's opaque node key; the name is a free-form display label.
type NodeRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActivationRequest is the payload sent to the activate endpoint. When
// Append is true the nodes are unioned with the currently active set
// instead of replacing it.
type ActivationRequest struct {
	Nodes  []NodeRef `json:"nodes"`
	Append bool      `json:"append"`
}

// ActivateResult carries the parsed activate response plus the raw body
// for diagnostic output.
type ActivateResult struct {
	ActiveNodes []string
	Raw         []byte
}

// StatusResult carries the parsed status response plus the raw body.
type StatusResult struct {
	ActiveNodes []ActiveEntry
	Raw         []byte
}

// PlaceholderName is shown for active entries the server reports without
// a display name.
const PlaceholderName = "unnamed"

// ActiveEntry is one element of the server's activeNodes list. The server
// emits either a bare identifier string or an {id, name} object; the shape
// is resolved while decoding.
type ActiveEntry struct {
	ID   string
	Name string
}

func (e *ActiveEntry) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*e = ActiveEntry{ID: id}
		return nil
	}

	var obj struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode active node entry: %w", err)
	}

	*e = ActiveEntry{ID: obj.ID, Name: obj.Name}
	return nil
}

// DisplayName returns the entry's name, or a placeholder when the server
// did not provide one.
func (e ActiveEntry) DisplayName() string {
	if strings.TrimSpace(e.Name) == "" {
		return PlaceholderName
	}
	return e.Name
}

// ParseNodeToken parses a command-line node token of the form "id:name".
// Colons after the first belong to the name. A token without a name part
// gets a "Neuron {id}" default. A token with an empty id is rejected.
func ParseNodeToken(token string) (NodeRef, error) {
	id, name, found := strings.Cut(token, ":")
	if id == "" {
		return NodeRef{}, fmt.Errorf("%w: %q", ErrInvalidNodeToken, token)
	}
	if !found || name == "" {
		name = fmt.Sprintf("Neuron %s", id)
	}
	return NodeRef{ID: id, Name: name}, nil
}

// ParseNodeTokens parses each token in order, failing on the first invalid
// one.
func ParseNodeTokens(tokens []string) ([]NodeRef, error) {
	nodes := make([]NodeRef, 0, len(tokens))
	for _, token := range tokens {
		node, err := ParseNodeToken(token)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
