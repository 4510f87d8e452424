package pixelsort

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeSet(t *testing.T) {
	var m Mode
	require.NoError(t, m.Set("Horizontal"))
	assert.Equal(t, ModeHorizontal, m)
	require.NoError(t, m.Set(" random "))
	assert.Equal(t, ModeRandom, m)
	assert.Error(t, m.Set("diagonal"))
	assert.Equal(t, ModeRandom, m)
}

func TestSelectUnsetMode(t *testing.T) {
	_, err := NewSorter(1).Select(Params{})
	assert.ErrorIs(t, err, ErrNoMode)
}

func TestSelectRandomNeedsSource(t *testing.T) {
	_, err := NewSorter(1).Select(Params{Mode: ModeRandom, RelEntropy: 0.5})
	assert.Error(t, err)
}

func TestSelectDispatch(t *testing.T) {
	base := randomImage(rand.New(rand.NewSource(15)), 10, 14)
	s := NewSorter(2)

	tests := []struct {
		name  string
		p     Params
		apply func(img *Image)
	}{
		{"none", Params{Mode: ModeNone}, func(*Image) {}},
		{"horizontal", Params{Mode: ModeHorizontal, Threshold: 120}, func(img *Image) {
			s.SortUnits(img, Rows, Comparator{Threshold: 120})
		}},
		{"vertical", Params{Mode: ModeVertical}, func(img *Image) {
			s.SortUnits(img, Columns, Plain)
		}},
		{"random", Params{Mode: ModeRandom, RelEntropy: 0.4, Threshold: 500, Rand: rand.New(rand.NewSource(99))}, func(img *Image) {
			s.RandomSort(img, 0.4, rand.New(rand.NewSource(99)))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect, err := s.Select(tt.p)
			require.NoError(t, err)

			got, want := base.Clone(), base.Clone()
			effect(got)
			tt.apply(want)
			assert.Equal(t, want.Pix, got.Pix)
		})
	}
}

func TestModeUnits(t *testing.T) {
	img := NewImage(3, 8)
	assert.Equal(t, 3, ModeHorizontal.Units(img))
	assert.Equal(t, 8, ModeVertical.Units(img))
	assert.Equal(t, 1, ModeRandom.Units(img))
	assert.Equal(t, 0, ModeNone.Units(img))
}
