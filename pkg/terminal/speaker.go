package terminal

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gonewx/arrowfish/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const speakerRate = beep.SampleRate(48000)

// SpeakerCues 通过 beep/speaker 播放事件音效，终端前端没有 ebiten 音频上下文时使用
//
// 所有音效混入同一个常驻 Mixer，speaker 在自己的 goroutine 中读取它。
type SpeakerCues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSpeakerCues 创建未初始化的播放器，Initialize 之前所有事件都被忽略
func NewSpeakerCues() *SpeakerCues {
	return &SpeakerCues{mixer: &beep.Mixer{}}
}

// Initialize 打开音频设备
func (sc *SpeakerCues) Initialize() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.initialized {
		return nil
	}
	if err := speaker.Init(speakerRate, speakerRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sc.mixer)
	sc.initialized = true
	log.Printf("[SpeakerCues] Speaker initialized at %d Hz", speakerRate)
	return nil
}

// OnSignal 实现 game.Listener
func (sc *SpeakerCues) OnSignal(signal game.Signal) {
	sc.Play(signal.Kind)
}

// Play 播放事件对应的音效
//
// 返回:
//   - bool: 是否有音效被加入混音
func (sc *SpeakerCues) Play(kind game.SignalKind) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.initialized {
		return false
	}
	cue := game.SynthesizeCue(kind, speakerRate)
	if cue == nil {
		return false
	}

	speaker.Lock()
	sc.mixer.Add(cue)
	speaker.Unlock()
	return true
}

// Close 清空混音，已在播放的音效立即停止
func (sc *SpeakerCues) Close() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.initialized {
		return
	}
	speaker.Lock()
	sc.mixer.Clear()
	speaker.Unlock()
	sc.initialized = false
}
