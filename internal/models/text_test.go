package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontStylesOrder(t *testing.T) {
	assert.Equal(t, []string{
		"Courier", "Helvetica", "Times Roman", "Zapfino", "Geneva", "Arial", "Futura",
	}, FontStyleNames())

	styles := FontStyles()
	styles[0] = "Comic Sans"
	assert.Equal(t, Courier, FontStyles()[0], "FontStyles must return a copy")
}

func TestParseFontStyle(t *testing.T) {
	for _, name := range FontStyleNames() {
		style, err := ParseFontStyle(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(style))
	}

	_, err := ParseFontStyle("courier")
	assert.True(t, errors.Is(err, ErrUnknownFontStyle))
	_, err = ParseFontStyle("")
	assert.True(t, errors.Is(err, ErrUnknownFontStyle))
}

func TestClampFontSize(t *testing.T) {
	assert.Equal(t, 10, ClampFontSize(-3))
	assert.Equal(t, 10, ClampFontSize(9))
	assert.Equal(t, 10, ClampFontSize(10))
	assert.Equal(t, 24, ClampFontSize(24))
	assert.Equal(t, 48, ClampFontSize(48))
	assert.Equal(t, 48, ClampFontSize(49))
}

func TestDisplayedTextString(t *testing.T) {
	text := DisplayedText{Content: "Hi", Anchor: NewPoint(50, 50), Style: Arial, Size: 24}
	assert.Equal(t, `"Hi" at (50,50) Arial 24pt`, text.String())
}
