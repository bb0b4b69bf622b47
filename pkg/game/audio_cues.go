package game

import (
	"encoding/binary"
	"log"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator 生成固定时长的原始波形
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator 创建振荡器
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音/释音包络
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope 为声音加上起音和释音
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume 线性音量转换为 effects.Volume 的对数音量
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// note 带包络的单音
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// SynthesizeCue 为事件生成音效，没有对应音效的事件返回 nil
func SynthesizeCue(kind SignalKind, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch kind {
	case SignalProjectileFired:
		return withVolume(note(660, 60*ms, WaveSine, rate), 0.4)
	case SignalFishKilled:
		return beep.Mix(
			withVolume(note(880, 120*ms, WaveSine, rate), 0.7),
			withVolume(note(1760, 120*ms, WaveSine, rate), 0.3),
		)
	case SignalHazardExploded:
		return withVolume(note(0, 300*ms, WaveNoise, rate), 0.6)
	case SignalFeverStarted:
		return beep.Seq(
			note(523, 80*ms, WaveSquare, rate),
			note(659, 80*ms, WaveSquare, rate),
			note(784, 160*ms, WaveSquare, rate),
		)
	case SignalFeverBlocked:
		return withVolume(note(110, 150*ms, WaveSaw, rate), 0.5)
	case SignalPowerUpGranted:
		return beep.Seq(note(523, 70*ms, WaveSine, rate), note(784, 140*ms, WaveSine, rate))
	case SignalBossSpawned:
		return withVolume(note(80, 600*ms, WaveSaw, rate), 0.6)
	case SignalTentacleDestroyed:
		return note(220, 200*ms, WaveSquare, rate)
	case SignalCoreHit:
		return withVolume(note(330, 80*ms, WaveSquare, rate), 0.5)
	case SignalBossDefeated:
		return beep.Mix(
			withVolume(note(0, 500*ms, WaveNoise, rate), 0.5),
			withVolume(note(60, 500*ms, WaveSaw, rate), 0.5),
		)
	case SignalSessionEnded:
		return beep.Seq(
			note(440, 120*ms, WaveSine, rate),
			note(330, 120*ms, WaveSine, rate),
			note(220, 240*ms, WaveSine, rate),
		)
	}
	return nil
}

// RenderPCM 将 Streamer 渲染为 16 位小端立体声 PCM（ebiten/audio 的格式）
func RenderPCM(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	var out []byte
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for c := 0; c < 2; c++ {
				v := math.Max(-1, math.Min(1, buf[i][c]))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// AudioCues 订阅会话事件并播放合成音效
//
// 音效在首次播放时合成并缓存，context 为 nil 时所有操作为空操作（测试、终端前端）
type AudioCues struct {
	context *audio.Context
	volume  float64
	enabled bool
	pcm     map[SignalKind][]byte
	players map[SignalKind]*audio.Player
}

// NewAudioCues 创建音效播放器
//
// 参数:
//   - ctx: ebiten 音频上下文，可为 nil
//   - volume: 音效音量 (0.0 ~ 1.0)
func NewAudioCues(ctx *audio.Context, volume float64) *AudioCues {
	return &AudioCues{
		context: ctx,
		volume:  volume,
		enabled: ctx != nil,
		pcm:     make(map[SignalKind][]byte),
		players: make(map[SignalKind]*audio.Player),
	}
}

// OnSignal 实现 Listener
func (ac *AudioCues) OnSignal(signal Signal) {
	ac.Play(signal.Kind)
}

// SetEnabled 开关音效
func (ac *AudioCues) SetEnabled(enabled bool) {
	ac.enabled = enabled && ac.context != nil
}

// SetVolume 设置音效音量，立即应用到所有缓存的播放器
func (ac *AudioCues) SetVolume(volume float64) {
	ac.volume = volume
	for _, player := range ac.players {
		player.SetVolume(volume)
	}
}

// Play 播放事件对应的音效
//
// 返回:
//   - bool: 是否成功播放
func (ac *AudioCues) Play(kind SignalKind) bool {
	if !ac.enabled {
		return false
	}

	player := ac.player(kind)
	if player == nil {
		return false
	}

	player.SetVolume(ac.volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioCues] Warning: Failed to rewind cue %s: %v", kind, err)
	}
	player.Play()
	return true
}

// Preload 预先合成音效，避免首次播放时卡顿
func (ac *AudioCues) Preload(kinds ...SignalKind) {
	if ac.context == nil {
		return
	}
	for _, kind := range kinds {
		ac.player(kind)
	}
	log.Printf("[AudioCues] Preloaded %d cues", len(kinds))
}

// PCM 返回事件音效的 PCM 数据（带缓存），没有对应音效时返回 nil
func (ac *AudioCues) PCM(kind SignalKind, rate beep.SampleRate) []byte {
	if data, ok := ac.pcm[kind]; ok {
		return data
	}
	cue := SynthesizeCue(kind, rate)
	if cue == nil {
		ac.pcm[kind] = nil
		return nil
	}
	data := RenderPCM(cue)
	ac.pcm[kind] = data
	return data
}

func (ac *AudioCues) player(kind SignalKind) *audio.Player {
	if player, ok := ac.players[kind]; ok {
		return player
	}

	data := ac.PCM(kind, beep.SampleRate(ac.context.SampleRate()))
	if data == nil {
		return nil
	}

	player := ac.context.NewPlayerFromBytes(data)
	ac.players[kind] = player
	return player
}
