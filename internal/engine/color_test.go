package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#000000", 0, false},
		{"#FFFFFF", RGB(255, 255, 255), false},
		{"#a1b2c3", RGB(0xA1, 0xB2, 0xC3), false},
		{"A1B2C3", 0, true},
		{"#A1B2C", 0, true},
		{"#A1B2C3D", 0, true},
		{"#GGGGGG", 0, true},
		{"#+12345", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestColor_StringAndRGB(t *testing.T) {
	c := RGB(0x0A, 0xBC, 0x01)
	assert.Equal(t, "#0ABC01", c.String())

	r, g, b := c.RGB()
	assert.Equal(t, [3]uint8{0x0A, 0xBC, 0x01}, [3]uint8{r, g, b})
}

func TestColor_JSONUsesHexString(t *testing.T) {
	payload, err := json.Marshal(struct {
		Color Color `json:"color"`
	}{Color: RGB(0xDE, 0xAD, 0x00)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"#DEAD00"}`, string(payload))

	var back struct {
		Color Color `json:"color"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"color":"red"}`), &back))
}
