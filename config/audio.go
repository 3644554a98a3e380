package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundDash
	SoundDashReady
	SoundUIClick
)

// Waveform selects the oscillator used to synthesize a sound
type Waveform int

const (
	WaveNoise Waveform = iota
	WaveSine
	WaveSquare
)

// SynthSpec describes a procedurally generated sound effect
type SynthSpec struct {
	Wave      Waveform
	Duration  float64 // seconds
	FreqStart float64 // Hz, ignored for noise
	FreqEnd   float64
	Attack    float64 // seconds
	Volume    float64 // 0.0 - 1.0
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to synth specs
type SoundConfig struct {
	Synth             map[SoundID]SynthSpec
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Synth: map[SoundID]SynthSpec{
			SoundDash:      {Wave: WaveNoise, Duration: 0.22, Attack: 0.01, Volume: 0.6},
			SoundDashReady: {Wave: WaveSine, Duration: 0.08, FreqStart: 880, FreqEnd: 1320, Attack: 0.005, Volume: 0.35},
			SoundUIClick:   {Wave: WaveSquare, Duration: 0.04, FreqStart: 600, FreqEnd: 600, Attack: 0.002, Volume: 0.2},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundDash: 1.2,
		},
	}
}
