package engine

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestGenerateColor_Format(t *testing.T) {
	e, _ := newTestEngine(10)
	for i := 0; i < 2000; i++ {
		c := e.GenerateColor()
		if !colorPattern.MatchString(c.String()) {
			t.Fatalf("color %q does not match %s", c, colorPattern)
		}
	}
}

func TestNewRound_ThreeVsOne(t *testing.T) {
	e, _ := newTestEngine(11)
	for i := 0; i < 1000; i++ {
		r := e.NewRound()
		var odd, common int
		for _, c := range r.Options {
			if c == r.OddColor {
				odd++
			}
			if c == r.CommonColor {
				common++
			}
		}
		if r.OddColor == r.CommonColor {
			assert.Equal(t, OptionCount, odd)
			continue
		}
		if odd != 1 || common != 3 {
			t.Fatalf("round %d: want 1 odd and 3 common, got %d/%d in %v", i, odd, common, r.Options)
		}
	}
}

func TestNewRound_OddLandsInEveryPosition(t *testing.T) {
	e, _ := newTestEngine(12)
	var seen [OptionCount]int
	for i := 0; i < 800; i++ {
		r := e.NewRound()
		for pos, c := range r.Options {
			if c == r.OddColor && r.OddColor != r.CommonColor {
				seen[pos]++
			}
		}
	}
	for pos, n := range seen {
		assert.Greater(t, n, 100, "odd swatch landed in position %d only %d times", pos, n)
	}
}

func TestNewRound_StampsClock(t *testing.T) {
	e, clk := newTestEngine(13)
	clk.Advance(5 * time.Second)
	assert.Equal(t, epoch.Add(5*time.Second), e.NewRound().StartedAt)
}

func TestResolveChoice(t *testing.T) {
	odd := RGB(0xAA, 0x00, 0x11)
	common := RGB(0xAA, 0x00, 0x12)
	r := Round{
		OddColor:    odd,
		CommonColor: common,
		Options:     [OptionCount]Color{common, odd, common, common},
		StartedAt:   epoch,
	}
	collision := Round{
		OddColor:    odd,
		CommonColor: odd,
		Options:     [OptionCount]Color{odd, odd, odd, odd},
		StartedAt:   epoch,
	}

	cases := []struct {
		name        string
		round       Round
		chosen      Color
		now         time.Time
		wantCorrect bool
		wantElapsed float64
	}{
		{"odd chosen", r, odd, epoch.Add(1234 * time.Millisecond), true, 1.23},
		{"common chosen", r, common, epoch.Add(1500 * time.Millisecond), false, 1.5},
		{"instant", r, odd, epoch, true, 0},
		{"clock stepped back", r, odd, epoch.Add(-time.Second), true, 0},
		{"collision matches by value", collision, odd, epoch.Add(250 * time.Millisecond), true, 0.25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveChoice(tc.round, tc.chosen, tc.now)
			assert.Equal(t, tc.wantCorrect, got.Correct)
			assert.Equal(t, tc.wantElapsed, got.ElapsedSeconds)
			assert.GreaterOrEqual(t, got.ElapsedSeconds, 0.0)
		})
	}
}
