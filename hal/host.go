//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"lcdtris/render"
)

// Host button names in wiring order.
var hostButtonNames = [4]string{"SW_LEFT", "SW_ROTATE", "SW_RESET", "SW_RIGHT"}

type hostHAL struct {
	cfg     Config
	logger  *hostLogger
	led     *hostLED
	fb      *hostFramebuffer
	pins    [4]*virtualPin
	buttons *buttonBank
	keys    *hostKeyboard
	t       *hostTime
	entropy hostEntropy
}

// New returns a host HAL implementation logging to stderr.
func New(cfg Config) HAL {
	h, err := newHost(cfg, os.Stderr)
	if err != nil {
		panic(err)
	}
	return h
}

func newHost(cfg Config, w io.Writer) (*hostHAL, error) {
	cfg = cfg.withDefaults()
	logger := newHostLogger(w)

	var pins [4]*virtualPin
	var edgePins [4]EdgePin
	for i, name := range hostButtonNames {
		pins[i] = newVirtualPin(name, GPIOCapInput|GPIOCapPullUp|GPIOCapEdge)
		edgePins[i] = pins[i]
	}
	buttons, err := newButtonBank(edgePins, true)
	if err != nil {
		return nil, fmt.Errorf("hal: buttons: %w", err)
	}

	return &hostHAL{
		cfg:     cfg,
		logger:  logger,
		led:     &hostLED{logger: logger},
		fb:      newHostFramebuffer(cfg.Width, cfg.Height),
		pins:    pins,
		buttons: buttons,
		keys:    newHostKeyboard(pins),
		t:       newHostTime(cfg.Hz),
	}, nil
}

func (h *hostHAL) Logger() Logger      { return h.logger }
func (h *hostHAL) LED() LED            { return h.led }
func (h *hostHAL) Panel() render.Panel { return h.fb }
func (h *hostHAL) Buttons() Buttons    { return h.buttons }
func (h *hostHAL) Time() Time          { return h.t }
func (h *hostHAL) Entropy() Entropy    { return h.entropy }

// press drives a button as a switch closing to ground would.
func (h *hostHAL) press(i int, down bool) { h.pins[i].drive(!down) }

// hostLogger adapts a charmbracelet logger to the line-oriented Logger.
type hostLogger struct {
	l *log.Logger
}

func newHostLogger(w io.Writer) *hostLogger {
	return &hostLogger{l: log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "lcdtris",
	})}
}

func (l *hostLogger) WriteLineString(s string) { l.l.Info(s) }
func (l *hostLogger) WriteLineBytes(b []byte)  { l.l.Info(string(b)) }

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.l.Debug("led", "level", "HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.l.Debug("led", "level", "LOW")
}

type hostEntropy struct{}

func (hostEntropy) Seed() uint32 {
	n := uint64(time.Now().UnixNano())
	return uint32(n) ^ uint32(n>>32)
}
