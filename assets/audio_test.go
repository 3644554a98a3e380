package assets

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/dashcrawler/config"
)

func TestSynthesizeWAVHeader(t *testing.T) {
	spec := config.SynthSpec{Wave: config.WaveSine, Duration: 0.1, FreqStart: 440, FreqEnd: 440, Attack: 0.01, Volume: 0.5}
	data := SynthesizeWAV(spec, 44100, 1)

	if string(data[0:4]) != "RIFF" || string(data[8:16]) != "WAVEfmt " || string(data[36:40]) != "data" {
		t.Fatalf("bad chunk ids: %q", data[:40])
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 44100 {
		t.Errorf("sample rate = %d, want 44100", got)
	}
	wantPCM := 4410 * 4
	if got := binary.LittleEndian.Uint32(data[40:44]); int(got) != wantPCM {
		t.Errorf("data size = %d, want %d", got, wantPCM)
	}
	if len(data) != 44+wantPCM {
		t.Errorf("len = %d, want %d", len(data), 44+wantPCM)
	}
	if got := binary.LittleEndian.Uint32(data[4:8]); int(got) != len(data)-8 {
		t.Errorf("riff size = %d, want %d", got, len(data)-8)
	}
}

func TestSynthesizeWAVDeterministic(t *testing.T) {
	spec := config.Sound.Synth[config.SoundDash]
	a := SynthesizeWAV(spec, 22050, 7)
	b := SynthesizeWAV(spec, 22050, 7)
	if string(a) != string(b) {
		t.Fatal("same seed rendered different noise")
	}
}

func TestSynthesizeWAVStaysInRange(t *testing.T) {
	spec := config.SynthSpec{Wave: config.WaveSquare, Duration: 0.05, FreqStart: 300, FreqEnd: 300, Volume: 3}
	data := SynthesizeWAV(spec, 8000, 1)
	pcm := data[44:]
	for i := 0; i+1 < len(pcm); i += 2 {
		s := int16(binary.LittleEndian.Uint16(pcm[i:]))
		if s == -32768 {
			t.Fatalf("sample %d wrapped to %d", i/2, s)
		}
	}
	// Release ends in silence
	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-2:]))
	if last > 200 || last < -200 {
		t.Errorf("last sample = %d, want near zero", last)
	}
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		name           string
		t, attack, dur float64
		want           float64
	}{
		{"attack start", 0, 0.1, 1, 0},
		{"attack mid", 0.05, 0.1, 1, 0.5},
		{"release start", 0.1, 0.1, 1, 1},
		{"release end", 1, 0.1, 1, 0},
		{"no attack", 0, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := envelope(tt.t, tt.attack, tt.dur)
			if d := got - tt.want; d > 1e-9 || d < -1e-9 {
				t.Errorf("envelope(%v, %v, %v) = %v, want %v", tt.t, tt.attack, tt.dur, got, tt.want)
			}
		})
	}
}
