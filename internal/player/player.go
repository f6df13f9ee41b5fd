// Package player содержит компоненты для управления воспроизведением аудио
package player

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/hazadus/go-jukebox/internal/audio"
)

// ErrClosed возвращается при обращении к закрытому плееру
var ErrClosed = errors.New("плеер закрыт")

// State - состояние воспроизведения
type State int

const (
	// Stopped - остановлен (или ничего не загружено)
	Stopped State = iota
	// Playing - воспроизводится
	Playing
	// Paused - на паузе
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// EventKind - тип уведомления плеера
type EventKind int

const (
	// DurationChanged - изменилась длительность загруженного трека
	DurationChanged EventKind = iota
	// PositionChanged - изменилась позиция воспроизведения
	PositionChanged
	// StateChanged - изменилось состояние воспроизведения
	StateChanged
)

// Event - уведомление плеера. Value заполнено для позиции и длительности,
// State - для смены состояния.
type Event struct {
	Kind  EventKind
	Value time.Duration
	State State
}

// Millis возвращает Value в миллисекундах
func (e Event) Millis() int64 {
	return e.Value.Milliseconds()
}

// Option настраивает плеер
type Option func(*Player)

// WithOutput задает устройство вывода
func WithOutput(output Output) Option {
	return func(p *Player) {
		p.output = output
	}
}

// WithNotifyInterval задает период уведомлений о позиции
func WithNotifyInterval(interval time.Duration) Option {
	return func(p *Player) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

type listener struct {
	id int
	fn func(Event)
}

// snapshot - состояние плеера в момент опроса диспетчером
type snapshot struct {
	generation uint64
	state      State
	position   time.Duration
	duration   time.Duration
}

// Player воспроизводит один загруженный трек
type Player struct {
	output   Output
	interval time.Duration

	// Внутреннее состояние, защищено mutex
	mutex      sync.Mutex
	state      State
	source     string
	streamer   beep.StreamSeekCloser
	format     beep.Format
	outputRate beep.SampleRate
	ctrl       *beep.Ctrl
	generation uint64 // меняется при каждой смене источника
	session    uint64 // меняется при каждой постановке потока в вывод
	closed     bool

	listenersMutex sync.Mutex
	listeners      []listener
	nextListenerID int

	wake      chan struct{}
	finished  chan uint64
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewPlayer создает новый экземпляр плеера
func NewPlayer(opts ...Option) *Player {
	p := &Player{
		output:   &speakerOutput{},
		interval: time.Second / 4,
		wake:     make(chan struct{}, 1),
		finished: make(chan uint64, 4),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	// Начальный снимок берется до первой команды, иначе первая загрузка
	// может попасть в него и остаться без уведомлений
	initial := p.snapshot()
	p.wg.Add(1)
	go p.dispatch(initial)

	return p
}

// Subscribe регистрирует получателя уведомлений. Уведомления приходят из
// отдельной горутины по одному; получатель не должен блокироваться надолго.
func (p *Player) Subscribe(fn func(Event)) (cancel func()) {
	p.listenersMutex.Lock()
	defer p.listenersMutex.Unlock()

	id := p.nextListenerID
	p.nextListenerID++
	p.listeners = append(p.listeners, listener{id: id, fn: fn})

	return func() {
		p.listenersMutex.Lock()
		defer p.listenersMutex.Unlock()
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

// LoadAndPlay заменяет текущий трек и начинает воспроизведение с начала.
// При ошибке плеер остается остановленным без загруженного трека.
func (p *Player) LoadAndPlay(path string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	defer p.notify()

	if p.closed {
		return ErrClosed
	}

	p.unload()

	streamer, format, err := audio.Open(path)
	if err != nil {
		return fmt.Errorf("ошибка загрузки трека: %w", err)
	}

	rate, err := p.output.Init(format.SampleRate)
	if err != nil {
		streamer.Close()
		return fmt.Errorf("ошибка инициализации динамиков: %w", err)
	}

	p.streamer = streamer
	p.format = format
	p.outputRate = rate
	p.source = path
	p.ctrl = &beep.Ctrl{Streamer: streamer}
	p.start()

	return nil
}

// TogglePlayPause ставит на паузу или продолжает воспроизведение.
// Остановленный трек запускается с начала.
func (p *Player) TogglePlayPause() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	defer p.notify()

	if p.ctrl == nil {
		return
	}

	switch p.state {
	case Playing:
		p.output.Lock()
		p.ctrl.Paused = true
		p.output.Unlock()
		p.state = Paused
	case Paused:
		p.output.Lock()
		p.ctrl.Paused = false
		p.output.Unlock()
		p.state = Playing
	case Stopped:
		p.start()
	}
}

// Stop останавливает воспроизведение и сбрасывает позицию в начало.
// Трек остается загруженным.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	defer p.notify()

	if p.ctrl == nil || p.state == Stopped {
		return
	}

	p.output.Clear()
	p.session++
	p.rewind()
	p.state = Stopped
}

// State возвращает текущее состояние
func (p *Player) State() State {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.state
}

// IsPlaying возвращает true, если трек воспроизводится
func (p *Player) IsPlaying() bool {
	return p.State() == Playing
}

// Source возвращает путь к загруженному треку
func (p *Player) Source() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.source
}

// Close закрывает плеер и освобождает ресурсы
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.wg.Wait()

		p.mutex.Lock()
		p.unload()
		p.closed = true
		p.mutex.Unlock()
	})
	return nil
}

// start ставит поток в вывод (вызывается под мьютексом)
func (p *Player) start() {
	p.session++
	session := p.session

	var stream beep.Streamer = p.ctrl
	if p.outputRate != p.format.SampleRate {
		stream = beep.Resample(4, p.format.SampleRate, p.outputRate, p.ctrl)
	}

	// Callback выполняется в горутине вывода под его блокировкой,
	// поэтому здесь только сигнал диспетчеру
	p.output.Play(beep.Seq(stream, beep.Callback(func() {
		select {
		case p.finished <- session:
		default:
		}
	})))
	p.state = Playing
}

// rewind возвращает поток в начало (вызывается под мьютексом)
func (p *Player) rewind() {
	p.output.Lock()
	p.ctrl.Paused = false
	if err := p.streamer.Seek(0); err != nil {
		log.Printf("player: ошибка перемотки %s: %v", p.source, err)
	}
	p.output.Unlock()
}

// unload выгружает текущий трек (вызывается под мьютексом)
func (p *Player) unload() {
	if p.ctrl != nil {
		p.output.Clear()
		p.ctrl = nil
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.source = ""
	p.state = Stopped
	p.session++
	p.generation++
}

func (p *Player) notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Player) handleFinished(session uint64) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if session != p.session || p.state != Playing || p.ctrl == nil {
		return
	}
	p.session++
	p.rewind()
	p.state = Stopped
}

func (p *Player) snapshot() snapshot {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	s := snapshot{generation: p.generation, state: p.state}
	if p.streamer != nil {
		p.output.Lock()
		s.position = p.format.SampleRate.D(p.streamer.Position())
		s.duration = p.format.SampleRate.D(p.streamer.Len())
		p.output.Unlock()
	}
	return s
}

// dispatch опрашивает плеер по таймеру и после каждой команды и рассылает
// изменения. Все уведомления идут из этой горутины, без удержания мьютекса.
func (p *Player) dispatch(last snapshot) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case session := <-p.finished:
			p.handleFinished(session)
		case <-p.wake:
		case <-ticker.C:
		}

		current := p.snapshot()
		p.publish(last, current)
		last = current
	}
}

func (p *Player) publish(last, current snapshot) {
	newSource := current.generation != last.generation

	if newSource || current.duration != last.duration {
		p.emit(Event{Kind: DurationChanged, Value: current.duration})
	}
	if newSource || current.position != last.position {
		p.emit(Event{Kind: PositionChanged, Value: current.position})
	}
	if current.state != last.state {
		p.emit(Event{Kind: StateChanged, State: current.state})
	}
}

func (p *Player) emit(event Event) {
	p.listenersMutex.Lock()
	fns := make([]func(Event), len(p.listeners))
	for i, l := range p.listeners {
		fns[i] = l.fn
	}
	p.listenersMutex.Unlock()

	for _, fn := range fns {
		fn(event)
	}
}
