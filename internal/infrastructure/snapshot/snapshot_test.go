package snapshot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorcha/tangle/internal/domain/entities"
)

func sampleSnapshot() *Snapshot {
	h := 70
	return &Snapshot{
		People: []entities.Person{
			{ID: "p1", Name: "Alice", X: 300, Y: 200},
			{ID: "p2", Name: "Bob", X: 500, Y: 150},
		},
		Relationships: []entities.Relationship{
			{
				ID: "r1", Person1ID: "p1", Person2ID: "p2", Type: "Friend", HealthScore: 62,
				Events: []entities.RelationshipEvent{
					{ID: "e1", Type: entities.EventPositive, Category: "Support", Description: "Moving help", Impact: 12, Date: "2026-03-01"},
				},
				P1ToP2Health: &h,
			},
		},
		NetworkEvents: []entities.NetworkEvent{
			{
				ID: "n1", Type: entities.EventNegative, Category: "Fight", Description: "Dinner fight",
				Date: "2026-04-01", Participants: []string{"p1", "p2"},
				Impacts: []entities.Impact{{RelationshipID: "r1", Impact: -15, Reason: "Involved in: Dinner fight", Auto: true}},
			},
		},
	}
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONCodec{}, ForFormat("json"))
	assert.IsType(t, &JSONCodec{}, ForFormat("JSON"))
	assert.IsType(t, &YAMLCodec{}, ForFormat("yaml"))
	assert.IsType(t, &YAMLCodec{}, ForFormat("yml"))
	assert.Nil(t, ForFormat("toml"))
	assert.Nil(t, ForFormat(""))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONCodec{}, ForFile("backup.json"))
	assert.IsType(t, &YAMLCodec{}, ForFile("backup.yaml"))
	assert.IsType(t, &YAMLCodec{}, ForFile("backup.YML"))
	assert.Nil(t, ForFile("backup.csv"))
	assert.Nil(t, ForFile("backup"))
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			codec := ForFormat(format)
			require.NotNil(t, codec)

			var buf bytes.Buffer
			require.NoError(t, codec.Encode(&buf, sampleSnapshot()))

			decoded, err := codec.Decode(&buf)
			require.NoError(t, err)

			assert.Equal(t, sampleSnapshot(), decoded)
		})
	}
}

func TestJSONCodec_DecodeInvalid(t *testing.T) {
	_, err := (&JSONCodec{}).Decode(strings.NewReader("{not json"))
	require.Error(t, err)
}

func TestYAMLCodec_DecodeInvalid(t *testing.T) {
	_, err := (&YAMLCodec{}).Decode(strings.NewReader("people: [broken"))
	require.Error(t, err)
}
