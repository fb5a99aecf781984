package codec

import (
	"bytes"
	"strings"
	"testing"

	"text-blackboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	assert.Equal(t, []string{EmptyMarker}, Encode(nil), "空画板编码为单独的 0")

	red, _ := domain.LookupColor("red")
	figures := []domain.Figure{
		domain.NewSquare(0, false, red, 2, 1, 5),
		domain.NewSquare(3, true, red, 4, 0, 9),
	}
	assert.Equal(t, []string{
		"Square: id(0), size( 2 ), coordinates( 1,5 ), color( r ), filled( no )",
		"Square: id(3), size( 4 ), coordinates( 0,9 ), color( r ), filled( yes )",
	}, Encode(figures))
}

func TestDecode(t *testing.T) {
	records, err := Decode([]string{
		"Square: id(0), size( 2 ), coordinates( 1,5 ), color( r ), filled( no )",
		"",
		"Square: id(7), size(12), coordinates(-3, 40), color( ? ), filled(yes)",
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.Record{
		{Kind: domain.KindSquare, Fill: false, Color: "red", Params: []int{2, 1, 5}},
		{Kind: domain.KindSquare, Fill: true, Color: "", Params: []int{12, -3, 40}},
	}, records)
}

func TestDecode_StopsAtEmptyMarker(t *testing.T) {
	records, err := Decode([]string{"0"})
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = Decode([]string{
		"Square: id(0), size( 2 ), coordinates( 1,5 ), color( g ), filled( no )",
		"0",
		"garbage after the marker",
	})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDecode_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"no label", "size( 2 ), coordinates( 1,5 )"},
		{"unknown label", "Hexagon: id(0), size( 2 )"},
		{"unimplemented label", "Circle: id(0), size( 2 ), coordinates( 1,5 ), color( r ), filled( no )"},
		{"missing size", "Square: id(0), coordinates( 1,5 ), color( r ), filled( no )"},
		{"bad size", "Square: id(0), size( two ), coordinates( 1,5 ), color( r ), filled( no )"},
		{"bad coordinates", "Square: id(0), size( 2 ), coordinates( 1;5 ), color( r ), filled( no )"},
		{"long color tag", "Square: id(0), size( 2 ), coordinates( 1,5 ), color( red ), filled( no )"},
		{"bad filled flag", "Square: id(0), size( 2 ), coordinates( 1,5 ), color( r ), filled( maybe )"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]string{tt.line})
			assert.ErrorIs(t, err, ErrCorruptFile)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestWriteRead(t *testing.T) {
	green, _ := domain.LookupColor("green")
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []domain.Figure{domain.NewSquare(0, true, green, 3, 2, 7)}))
	assert.Equal(t, "Square: id(0), size( 3 ), coordinates( 2,7 ), color( g ), filled( yes )\n", buf.String())

	records, err := Read(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "green", records[0].Color)
	assert.True(t, records[0].Fill)
}
