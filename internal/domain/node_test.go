package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNodeToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantID   string
		wantName string
	}{
		{name: "id and name", token: "144:Visual", wantID: "144", wantName: "Visual"},
		{name: "id only gets default name", token: "144", wantID: "144", wantName: "Neuron 144"},
		{name: "colons after the first stay in the name", token: "144:Visual:Left", wantID: "144", wantName: "Visual:Left"},
		{name: "trailing colon gets default name", token: "144:", wantID: "144", wantName: "Neuron 144"},
		{name: "whitespace id is kept verbatim", token: " 144 :Visual", wantID: " 144 ", wantName: "Visual"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := ParseNodeToken(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, node.ID)
			assert.Equal(t, tt.wantName, node.Name)
		})
	}
}

func TestParseNodeTokenRejectsEmptyID(t *testing.T) {
	for _, token := range []string{"", ":Visual", ":"} {
		_, err := ParseNodeToken(token)
		require.Error(t, err, "token %q", token)
		assert.ErrorIs(t, err, ErrInvalidNodeToken)
	}
}

func TestParseNodeTokensPreservesOrder(t *testing.T) {
	nodes, err := ParseNodeTokens([]string{"144:Visual", "145", "9:a:b"})
	require.NoError(t, err)

	require.Len(t, nodes, 3)
	assert.Equal(t, NodeRef{ID: "144", Name: "Visual"}, nodes[0])
	assert.Equal(t, NodeRef{ID: "145", Name: "Neuron 145"}, nodes[1])
	assert.Equal(t, NodeRef{ID: "9", Name: "a:b"}, nodes[2])
}

func TestParseNodeTokensFailsOnFirstInvalidToken(t *testing.T) {
	_, err := ParseNodeTokens([]string{"144:Visual", ":broken"})
	assert.ErrorIs(t, err, ErrInvalidNodeToken)
}

func TestActiveEntryDecodesBareIdentifier(t *testing.T) {
	var entry ActiveEntry
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &entry))

	assert.Equal(t, "42", entry.ID)
	assert.Equal(t, PlaceholderName, entry.DisplayName())
}

func TestActiveEntryDecodesNamedObject(t *testing.T) {
	var entry ActiveEntry
	require.NoError(t, json.Unmarshal([]byte(`{"id":"42","name":"Motor"}`), &entry))

	assert.Equal(t, "42", entry.ID)
	assert.Equal(t, "Motor", entry.DisplayName())
}

func TestActiveEntryDecodesObjectWithoutName(t *testing.T) {
	var entry ActiveEntry
	require.NoError(t, json.Unmarshal([]byte(`{"id":"42"}`), &entry))

	assert.Equal(t, "42", entry.ID)
	assert.Equal(t, PlaceholderName, entry.DisplayName())
}

func TestActiveEntryRejectsMalformedEntry(t *testing.T) {
	var entry ActiveEntry
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &entry))
}

func TestActiveEntryListDecodesMixedShapes(t *testing.T) {
	var decoded struct {
		ActiveNodes []ActiveEntry `json:"activeNodes"`
	}
	require.NoError(t, json.Unmarshal(
		[]byte(`{"activeNodes":["1",{"id":"2","name":"Motor"},"3"]}`), &decoded))

	require.Len(t, decoded.ActiveNodes, 3)
	assert.Equal(t, ActiveEntry{ID: "1"}, decoded.ActiveNodes[0])
	assert.Equal(t, ActiveEntry{ID: "2", Name: "Motor"}, decoded.ActiveNodes[1])
	assert.Equal(t, ActiveEntry{ID: "3"}, decoded.ActiveNodes[2])
}
