package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubtitlesDubbingName(t *testing.T) {
	name, ok := SubtitlesDubbingName("1")
	assert.True(t, ok)
	assert.Equal(t, "字幕版", name)

	name, ok = SubtitlesDubbingName("2")
	assert.True(t, ok)
	assert.Equal(t, "吹替版", name)

	_, ok = SubtitlesDubbingName("99")
	assert.False(t, ok)

	_, ok = SubtitlesDubbingName("")
	assert.False(t, ok)
}
