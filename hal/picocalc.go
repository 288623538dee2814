//go:build tinygo && baremetal && picocalc

package hal

import (
	"fmt"
	"machine"
	"time"

	"spincube/raster"
)

// uartLogger writes CRLF-terminated lines to a UART.
type uartLogger struct {
	uart *machine.UART
}

// NewUARTLogger configures UART0 on GP0/GP1 at 115200 8N1.
func NewUARTLogger() Logger {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return &uartLogger{uart: uart}
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// RunPicoCalc drives st on the PicoCalc LCD with fixed 1/FPS steps. The
// panel size replaces cfg.Width and cfg.Height. A missing keyboard is logged
// and the demo runs without input.
func RunPicoCalc(cfg Config, st Stepper) error {
	cfg = cfg.withDefaults()

	panel, err := newPicoCalcPanel()
	if err != nil {
		return fmt.Errorf("picocalc: %w", err)
	}
	keys, err := newPicoCalcKeys()
	if err != nil {
		cfg.Log.WriteLineString("picocalc: " + err.Error())
	}

	target := raster.DisplayerTarget{D: panel}
	canvas := raster.NewCanvas(target)
	clk := newFixedClock(cfg.FPS)
	budget := frameBudget(cfg.FPS)

	for {
		start := time.Now()
		if keys != nil {
			if k, ok := keys.poll(); ok && st.Key(k) {
				return nil
			}
		}

		st.Update(clk.tick())
		// Render through the panel's shadow buffer so the HUD and the cube
		// go out in one SPI transfer.
		st.Render(canvas)
		raster.DrawText(panel.fb, 2, 2, hudColor, st.Status()...)
		if err := target.Display(); err != nil {
			return fmt.Errorf("picocalc: display: %w", err)
		}

		time.Sleep(remaining(start, time.Now(), budget))
	}
}
