package hal

import (
	"testing"

	"lcdtris/input"
)

func TestVirtualPinConfigure(t *testing.T) {
	pin := newVirtualPin("P", GPIOCapInput)
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("Configure(output) err = nil, want error")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullUp); err == nil {
		t.Fatal("Configure(pull-up) err = nil, want error")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullNone); err != nil {
		t.Fatalf("Configure(input): %v", err)
	}
	if err := pin.Write(true); err == nil {
		t.Fatal("Write() on input err = nil, want error")
	}
	if err := pin.SetEdge(func() {}); err == nil {
		t.Fatal("SetEdge() without edge cap err = nil, want error")
	}
}

func TestVirtualPinDriveFiresEdgeOnChange(t *testing.T) {
	pin := newVirtualPin("P", GPIOCapInput|GPIOCapPullUp|GPIOCapEdge)
	if err := pin.Configure(GPIOModeInput, GPIOPullUp); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	edges := 0
	if err := pin.SetEdge(func() { edges++ }); err != nil {
		t.Fatalf("SetEdge: %v", err)
	}

	pin.drive(true)
	if edges != 0 {
		t.Fatalf("edges = %d after driving the pulled-up level, want 0", edges)
	}
	pin.drive(false)
	pin.drive(false)
	if edges != 1 {
		t.Fatalf("edges = %d, want 1", edges)
	}
	level, err := pin.Read()
	if err != nil || level {
		t.Fatalf("Read() = (%v, %v), want (false, nil)", level, err)
	}
	pin.drive(true)
	if edges != 2 {
		t.Fatalf("edges = %d, want 2", edges)
	}
}

func newTestBank(t *testing.T) (*buttonBank, [4]*virtualPin) {
	t.Helper()
	var pins [4]*virtualPin
	var edgePins [4]EdgePin
	for i := range pins {
		pins[i] = newVirtualPin("SW", GPIOCapInput|GPIOCapPullUp|GPIOCapEdge)
		edgePins[i] = pins[i]
	}
	b, err := newButtonBank(edgePins, true)
	if err != nil {
		t.Fatalf("newButtonBank: %v", err)
	}
	return b, pins
}

func TestButtonBankSampleActiveLow(t *testing.T) {
	b, pins := newTestBank(t)
	if got := b.Sample(); got != 0 {
		t.Fatalf("Sample() = %04b with all released, want 0", got)
	}
	pins[1].drive(false)
	pins[3].drive(false)
	if got, want := b.Sample(), input.Rotate|input.Right; got != want {
		t.Fatalf("Sample() = %04b, want %04b", got, want)
	}
}

func TestButtonBankEdgeMasking(t *testing.T) {
	b, pins := newTestBank(t)
	var got []input.Mask
	b.SetEdgeHandler(func(m input.Mask) { got = append(got, m) })

	pins[0].drive(false)
	if len(got) != 0 {
		t.Fatalf("handler called %d times with edges disabled, want 0", len(got))
	}

	b.EnableEdges(input.All)
	pins[0].drive(true)
	b.DisableEdges(input.Left)
	pins[0].drive(false)
	pins[2].drive(false)

	want := []input.Mask{input.Left, input.Reset}
	if len(got) != len(want) {
		t.Fatalf("handler calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("handler calls = %v, want %v", got, want)
		}
	}
}

func TestButtonBankRejectsMissingPin(t *testing.T) {
	var pins [4]EdgePin
	if _, err := newButtonBank(pins, true); err == nil {
		t.Fatal("newButtonBank() err = nil, want error")
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	p := rgb565(0xFF, 0x00, 0xFF)
	if p != 0xF81F {
		t.Fatalf("rgb565() = %#04x, want 0xf81f", p)
	}
	r, g, b := rgb888From565(p)
	if r != 0xFF || g != 0 || b != 0xFF {
		t.Fatalf("rgb888From565() = %d,%d,%d, want 255,0,255", r, g, b)
	}
}
