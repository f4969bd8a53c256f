package packet

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	p := testPacket(t)

	data, err := p.Encode()
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, p.ID, back.ID)
	assert.True(t, p.Timestamp.Equal(back.Timestamp))
	assert.Equal(t, p.Type, back.Type)
	assert.Equal(t, p.Fields, back.Fields)
	assert.Equal(t, p.Metadata, back.Metadata)
	assert.InDelta(t, p.Action.Gravity, back.Action.Gravity, 1e-9)
	assert.InDelta(t, p.Metrics["energy"], back.Metrics["energy"], 1e-9)
}

func TestEncode_StableWireFormat(t *testing.T) {
	p := testPacket(t)

	data, err := p.Encode()
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "packet", data)
}

func TestDecode_MissingRequiredField(t *testing.T) {
	p := testPacket(t)
	data, err := p.Encode()
	require.NoError(t, err)

	for _, key := range requiredKeys {
		var m map[string]any
		require.NoError(t, jsonUnmarshal(data, &m))
		delete(m, key)
		mutated := jsonMarshal(t, m)

		_, err := Decode(mutated)
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr, "dropping %q must fail", key)
		assert.Equal(t, key, decErr.Field)
	}
}

func TestDecode_MissingFieldMember(t *testing.T) {
	p := testPacket(t)
	data, err := p.Encode()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, jsonUnmarshal(data, &m))
	fields := m["fields"].(map[string]any)
	delete(fields, "dirac_spinor")

	_, err = Decode(jsonMarshal(t, m))
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, "fields.dirac_spinor", decErr.Field)
}

func TestDecode_UnknownVizType(t *testing.T) {
	p := testPacket(t)
	data, err := p.Encode()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, jsonUnmarshal(data, &m))
	m["visualization_type"] = "4d"

	_, err = Decode(jsonMarshal(t, m))
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Contains(t, decErr.Reason, "4d")
}

func TestDecode_NotJSON(t *testing.T) {
	_, err := Decode([]byte("not a packet"))
	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestSaveLoad(t *testing.T) {
	p := testPacket(t)
	path := filepath.Join(t.TempDir(), "packet.json")

	require.NoError(t, p.Save(path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p.ID, back.ID)
	assert.True(t, p.Timestamp.Equal(back.Timestamp))
	assert.Equal(t, p.Fields, back.Fields)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.json")
}
