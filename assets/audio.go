package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/automoto/dashcrawler/config"
)

// AudioLoader synthesizes sound effects and caches the decoded PCM.
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders and decodes a sound effect without creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	spec, ok := config.Sound.Synth[id]
	if !ok {
		return fmt.Errorf("no synth spec for sound %d", id)
	}

	data := SynthesizeWAV(spec, l.context.SampleRate(), int64(id))
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode wav for sound %d: %w", id, err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio for sound %d: %w", id, err)
	}

	l.sfxCache[id] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// SynthesizeWAV renders a synth spec as a 16-bit stereo PCM WAV file.
// Noise is seeded so the same sound renders identically every run.
func SynthesizeWAV(spec config.SynthSpec, sampleRate int, seed int64) []byte {
	n := int(spec.Duration * float64(sampleRate))
	if n < 0 {
		n = 0
	}
	pcm := make([]byte, n*4)
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))

	var phase float64
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)

		freq := spec.FreqStart + (spec.FreqEnd-spec.FreqStart)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		var v float64
		switch spec.Wave {
		case config.WaveSine:
			v = math.Sin(phase)
		case config.WaveSquare:
			v = 1
			if math.Sin(phase) < 0 {
				v = -1
			}
		default:
			v = rng.Float64()*2 - 1
		}

		v *= envelope(t, spec.Attack, spec.Duration) * spec.Volume
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(s))
	}

	return encodeWAV(pcm, sampleRate)
}

// envelope is a linear attack followed by a quadratic release to silence.
func envelope(t, attack, duration float64) float64 {
	if attack > 0 && t < attack {
		return t / attack
	}
	rest := duration - attack
	if rest <= 0 {
		return 0
	}
	r := 1 - (t-attack)/rest
	return r * r
}

func encodeWAV(pcm []byte, sampleRate int) []byte {
	const channels, bits = 2, 16
	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))

	w := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }
	buf.WriteString("RIFF")
	w(uint32(36 + len(pcm)))
	buf.WriteString("WAVEfmt ")
	w(uint32(16))
	w(uint16(1)) // PCM
	w(uint16(channels))
	w(uint32(sampleRate))
	w(uint32(sampleRate * channels * bits / 8))
	w(uint16(channels * bits / 8))
	w(uint16(bits))
	buf.WriteString("data")
	w(uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}
