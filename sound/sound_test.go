package sound

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone(t *testing.T) {
	pcm := tone(880, 0.5)
	assert.Equal(t, sampleRate, len(pcm), "half a second of 16-bit mono")
	assert.Equal(t, []byte{0, 0}, pcm[:2], "sine starts at zero")
}

func TestWavContainerDecodes(t *testing.T) {
	pcm := tone(440, 0.05)
	wavBytes := wavContainer(pcm)
	assert.Equal(t, 44+len(pcm), len(wavBytes))
	assert.Equal(t, "RIFF", string(wavBytes[:4]))
	assert.Equal(t, "WAVE", string(wavBytes[8:12]))

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(wavBytes))
	require.NoError(t, err)
	assert.Greater(t, stream.Length(), int64(0))
}

func TestPlayMutedTouchesNothing(t *testing.T) {
	SetVolume(0)
	defer SetVolume(1.0)
	Play("Select") // must not create the audio context
	assert.Nil(t, audioContext)
}
