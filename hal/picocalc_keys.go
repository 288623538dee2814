//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdFIFO byte   = 0x09

	picoCalcEventDown byte = 0x01

	picoCalcKeyEsc byte = 0xB1
	picoCalcKeyIns byte = 0xD1
)

// picoCalcKeys polls the keyboard MCU's event FIFO over I2C.
type picoCalcKeys struct {
	bus  *machine.I2C
	cmd  [1]byte
	resp [2]byte
}

func newPicoCalcKeys() (*picoCalcKeys, error) {
	// I2C1 is the stock wiring; some targets only expose I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}
			k := &picoCalcKeys{bus: bus, cmd: [1]byte{picoCalcKbdFIFO}}
			// The keyboard MCU is slow to come up after reset.
			for i := 0; i < 50; i++ {
				if err := k.bus.Tx(picoCalcKbdAddr, k.cmd[:], k.resp[:]); err == nil {
					return k, nil
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}
	return nil, errors.New("keyboard: I2C unavailable")
}

// poll returns the next key press, if any. Releases and held modifiers are
// dropped.
func (k *picoCalcKeys) poll() (KeyCode, bool) {
	if err := k.bus.Tx(picoCalcKbdAddr, k.cmd[:], k.resp[:]); err != nil {
		return KeyUnknown, false
	}
	if k.resp[0] != picoCalcEventDown {
		return KeyUnknown, false
	}
	switch k.resp[1] {
	case picoCalcKeyEsc:
		return KeyEscape, true
	case ' ':
		return KeySpace, true
	case '\t', picoCalcKeyIns:
		return KeyTab, true
	}
	return KeyUnknown, true
}
