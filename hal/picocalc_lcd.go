//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"image/color"
	"machine"
	"time"

	"spincube/raster"
)

const picoCalcSide = 320

// picoCalcPanel is the PicoCalc's 320x320 ILI9488 on SPI1. Pixels land in an
// RGB565 shadow buffer and go out to the panel on Display, which makes it a
// buffered drivers.Displayer.
type picoCalcPanel struct {
	spi machine.SPI
	cs  machine.Pin
	dc  machine.Pin
	rst machine.Pin

	fb    *raster.RGB565Target
	txBuf []byte
}

func newPicoCalcPanel() (*picoCalcPanel, error) {
	if machine.SPI1 == nil {
		return nil, errors.New("lcd: SPI1 unavailable")
	}
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		SDI:       machine.GP12,
		Frequency: 40_000_000,
	})

	p := &picoCalcPanel{
		spi:   *machine.SPI1,
		cs:    machine.GP13,
		dc:    machine.GP14,
		rst:   machine.GP15,
		fb:    raster.NewRGB565Target(picoCalcSide, picoCalcSide),
		txBuf: make([]byte, 4096),
	}
	for _, pin := range []machine.Pin{p.cs, p.dc, p.rst} {
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.High()
	}

	p.rst.Low()
	time.Sleep(64 * time.Millisecond)
	p.rst.High()
	time.Sleep(140 * time.Millisecond)

	p.cmd(0xC0, 0x17, 0x15)             // PWCTRL1
	p.cmd(0xC1, 0x41)                   // PWCTRL2
	p.cmd(0xC5, 0x00, 0x12, 0x80, 0x40) // VMCTRL
	p.cmd(0x3A, 0x55)                   // COLMOD 16bpp
	p.cmd(0xB1, 0xA0, 0x11)             // FRMCTRL1
	p.cmd(0xB6, 0x02, 0x22, 0x27)       // DISCTRL, 320 lines
	p.cmd(0x21)                         // INVON
	p.cmd(0x36, 0x40|0x04|0x08)         // MADCTL: MX|MH|BGR
	p.cmd(0x11)                         // SLPOUT
	time.Sleep(120 * time.Millisecond)
	p.cmd(0x29) // DISPON

	return p, nil
}

func (p *picoCalcPanel) cmd(c byte, data ...byte) {
	p.cs.Low()
	p.dc.Low()
	p.spi.Tx([]byte{c}, nil)
	p.dc.High()
	if len(data) > 0 {
		p.spi.Tx(data, nil)
	}
	p.cs.High()
}

func (p *picoCalcPanel) Size() (x, y int16) { return picoCalcSide, picoCalcSide }

func (p *picoCalcPanel) SetPixel(x, y int16, c color.RGBA) { p.fb.SetPixel(int(x), int(y), c) }

// Display sends the whole shadow buffer. The buffer is little-endian RGB565;
// the panel wants big-endian, so bytes are swapped per chunk.
func (p *picoCalcPanel) Display() error {
	const last = picoCalcSide - 1
	p.cmd(0x2A, 0, 0, byte(last>>8), byte(last))
	p.cmd(0x2B, 0, 0, byte(last>>8), byte(last))
	p.cmd(0x2C)

	p.cs.Low()
	p.dc.High()
	src := p.fb.Buf
	for off := 0; off < len(src); {
		n := len(p.txBuf)
		if n > len(src)-off {
			n = len(src) - off
		}
		n &^= 1
		if n == 0 {
			break
		}
		for i := 0; i < n; i += 2 {
			p.txBuf[i] = src[off+i+1]
			p.txBuf[i+1] = src[off+i]
		}
		p.spi.Tx(p.txBuf[:n], nil)
		off += n
	}
	p.cs.High()
	return nil
}
