package main

import (
	"testing"

	"github.com/deitrix/blockpuzzle/config"
	"github.com/deitrix/blockpuzzle/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_Layout(t *testing.T) {
	tests := []struct {
		name         string
		modify       func(*config.Config)
		wantW, wantH int
	}{
		{
			name: "classic",
			// Grid ends at 7+9*40=367; the O in the palette ends at 300+2*20=340; the lane
			// bottom is 475+2*20=515.
			wantW: 367 + margin,
			wantH: 515 + margin,
		},
		{
			name: "wide grid",
			modify: func(c *config.Config) {
				c.Grid = grid.Config{Rows: 12, Cols: 12, BlockSize: 4}
			},
			// 12 rows reach 55+480=535, below the palette lane.
			wantW: 7 + 480 + margin,
			wantH: 535 + margin,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := config.Default()
			if test.modify != nil {
				test.modify(&cfg)
			}
			g, err := NewGame(cfg)
			require.NoError(t, err)
			w, h := g.Layout(0, 0)
			assert.Equal(t, test.wantW, w)
			assert.Equal(t, test.wantH, h)
			assert.Equal(t, w, g.ScreenWidth)
		})
	}
}

func TestNewGame_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Refresh = "sometimes"
	_, err := NewGame(cfg)
	assert.Error(t, err)
}
