package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, name := range ModeNames() {
		m, err := ParseMode(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, m.String())
	}

	m, err := ParseMode(" FILL ")
	require.NoError(t, err)
	assert.Equal(t, ModeFill, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeNone, m)

	_, err = ParseMode("stretch")
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.ErrorContains(t, err, "within")
}

func TestApply(t *testing.T) {
	tests := []struct {
		mode          Mode
		width, height int
		wantW, wantH  int
	}{
		{ModeWithin, 50, 50, 50, 25},
		{ModeWidth, 40, 999, 40, 20},
		{ModeHeight, 999, 10, 20, 10},
		{ModeFill, 30, 30, 30, 30},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r := newResizer(t, 100, 50)
			require.NoError(t, r.Apply(tt.mode, tt.width, tt.height))
			w, h := r.Dimensions()
			assert.Equal(t, [2]int{tt.wantW, tt.wantH}, [2]int{w, h})
		})
	}
}

func TestApply_None(t *testing.T) {
	r := newResizer(t, 12, 6)
	require.NoError(t, r.Apply(ModeNone, 0, 0))
	assert.Nil(t, r.Image(), "none leaves the buffer empty until Save")

	require.NoError(t, r.Close())
	assert.ErrorIs(t, r.Apply(ModeNone, 0, 0), ErrClosed)
}

func TestApply_Errors(t *testing.T) {
	r := newResizer(t, 12, 6)
	assert.ErrorIs(t, r.Apply(Mode(99), 5, 5), ErrInvalidMode)
	assert.ErrorIs(t, r.Apply(ModeWidth, 0, 5), ErrInvalidDimensions)
	assert.Equal(t, "Mode(99)", Mode(99).String())
}

func TestFormats(t *testing.T) {
	infos := Formats()
	require.Len(t, infos, 3)
	for _, info := range infos {
		assert.True(t, info.Available, info.Format.String())
	}
	assert.Equal(t, DefaultJPEGQuality, infos[0].DefaultQuality)
	assert.Equal(t, 0, infos[1].DefaultQuality)
	assert.Equal(t, DefaultPNGCompression, infos[2].DefaultQuality)

	infos = Formats(WithCodecs(DefaultCodecs().Without(PNG)), WithJPEGQuality(33))
	assert.Equal(t, 33, infos[0].DefaultQuality)
	assert.Equal(t, "jpg", infos[0].Extension)
	assert.False(t, infos[2].Available)
}
