package sound

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var audioContext *audio.Context

var soundMap map[string]*audio.Player

var Volume float64 = 1.0

// tone renders a sine wave with a linear decay envelope as 16-bit
// mono PCM; all the game needs is short UI clicks, so these are
// synthesized here instead of embedding wav assets.
func tone(freq, seconds float64) []byte {
	samples := int(sampleRate * seconds)
	pcm := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		envelope := 1.0 - float64(i)/float64(samples)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * envelope * 0.6
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(s))
	}
	return pcm
}

// wavContainer wraps mono 16-bit PCM in a minimal RIFF header so the
// ebiten wav decoder can read it.
func wavContainer(pcm []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))           // bits per sample
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

func decode(name string, wavBytes []byte) {
	if len(wavBytes) == 0 {
		log.Panic("empty wav file ", name)
	}
	d, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(wavBytes))
	if err != nil {
		log.Panic(err)
	}
	audioPlayer, err := audioContext.NewPlayer(d)
	if err != nil {
		log.Panic(err)
	}
	soundMap[name] = audioPlayer
}

// load creates the audio context and players on first use, so that
// muted runs never touch the audio device.
func load() {
	if audioContext != nil {
		return
	}

	audioContext = audio.NewContext(sampleRate)
	soundMap = make(map[string]*audio.Player)

	decode("Select", wavContainer(tone(880, 0.06)))
	decode("Cancel", wavContainer(tone(330, 0.09)))
	decode("Tap", wavContainer(tone(660, 0.04)))
}

func SetVolume(vol float64) {
	Volume = vol
}

func Play(name string) {
	if Volume == 0.0 || name == "" {
		return
	}
	load()
	audioPlayer, ok := soundMap[name]
	if !ok {
		log.Panic(name, " not found in sound map")
	}
	if !audioPlayer.IsPlaying() {
		audioPlayer.Rewind()
		audioPlayer.SetVolume(Volume)
		audioPlayer.Play()
	}
}
