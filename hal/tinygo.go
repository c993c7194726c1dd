//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/st7735"

	"lcdtris/render"
)

type tinyGoHAL struct {
	logger  *uartLogger
	led     *pinLED
	panel   *st7735.Device
	buttons *buttonBank
	t       *tinyGoTime
}

// New returns the RP2040 board implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: ST7735 on SPI0, SCK GP18, SDO GP19, CS GP17, DC GP20, RST GP21, backlight GP22.
// Buttons: GP2 left, GP3 rotate, GP4 reset, GP5 right, closing to ground.
func New(cfg Config) HAL {
	cfg = cfg.withDefaults()

	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 16_000_000,
		SCK:       machine.GP18,
		SDO:       machine.GP19,
	})
	display := st7735.New(machine.SPI0, machine.GP21, machine.GP20, machine.GP17, machine.GP22)
	display.Configure(st7735.Config{
		Width:  int16(cfg.Width),
		Height: int16(cfg.Height),
	})

	pins := [4]EdgePin{
		&machinePin{pin: machine.GP2, name: "SW_LEFT"},
		&machinePin{pin: machine.GP3, name: "SW_ROTATE"},
		&machinePin{pin: machine.GP4, name: "SW_RESET"},
		&machinePin{pin: machine.GP5, name: "SW_RIGHT"},
	}
	buttons, err := newButtonBank(pins, true)
	if err != nil {
		panic("hal: buttons: " + err.Error())
	}

	return &tinyGoHAL{
		logger:  logger,
		led:     &pinLED{pin: ledPin},
		panel:   &display,
		buttons: buttons,
		t:       newTinyGoTime(cfg.Hz),
	}
}

func (h *tinyGoHAL) Logger() Logger      { return h.logger }
func (h *tinyGoHAL) LED() LED            { return h.led }
func (h *tinyGoHAL) Panel() render.Panel { return h.panel }
func (h *tinyGoHAL) Buttons() Buttons    { return h.buttons }
func (h *tinyGoHAL) Time() Time          { return h.t }
func (h *tinyGoHAL) Entropy() Entropy    { return rngEntropy{} }
