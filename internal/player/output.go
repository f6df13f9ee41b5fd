package player

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Output - устройство вывода звука. Lock/Unlock блокируют поток микширования,
// пока плеер читает или меняет состояние потоков.
type Output interface {
	// Init инициализирует устройство и возвращает его частоту дискретизации.
	// Повторные вызовы возвращают частоту первой инициализации.
	Init(sampleRate beep.SampleRate) (beep.SampleRate, error)
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

// speakerOutput выводит звук через beep/speaker
type speakerOutput struct {
	mutex       sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
}

func (o *speakerOutput) Init(sampleRate beep.SampleRate) (beep.SampleRate, error) {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	// Динамики инициализируются только один раз
	if o.initialized {
		return o.sampleRate, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/5)); err != nil {
		return 0, err
	}
	o.initialized = true
	o.sampleRate = sampleRate
	return sampleRate, nil
}

func (o *speakerOutput) Play(s beep.Streamer) { speaker.Play(s) }
func (o *speakerOutput) Clear()               { speaker.Clear() }
func (o *speakerOutput) Lock()                { speaker.Lock() }
func (o *speakerOutput) Unlock()              { speaker.Unlock() }
