package interrupts

import "testing"

func TestService_Acknowledge(t *testing.T) {
	tests := []struct {
		name     string
		flag     uint8
		enable   uint8
		vector   uint16
		ok       bool
		flagLeft uint8
	}{
		{"none", 0x00, 0x1F, 0, false, 0x00},
		{"disabled", 0x1F, 0x00, 0, false, 0x1F},
		{"vblank", 0x01, 0x01, 0x0040, true, 0x00},
		{"lcd", 0x02, 0x1F, 0x0048, true, 0x00},
		{"timer", 0x04, 0x04, 0x0050, true, 0x00},
		{"serial", 0x08, 0xFF, 0x0058, true, 0x00},
		{"joypad", 0x10, 0x10, 0x0060, true, 0x00},
		{"priority", 0x1F, 0x1F, 0x0040, true, 0x1E},
		{"priority masked", 0x1F, 0x1C, 0x0050, true, 0x1B},
		{"upper bits ignored", 0xE0, 0xE0, 0, false, 0xE0},
		{"upper bits kept", 0xE4, 0x04, 0x0050, true, 0xE0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Service{Flag: tt.flag, Enable: tt.enable}
			vector, ok := s.Acknowledge()
			if ok != tt.ok || vector != tt.vector {
				t.Errorf("expecting (%04x, %v), was (%04x, %v)", tt.vector, tt.ok, vector, ok)
			}
			if s.Flag != tt.flagLeft {
				t.Errorf("Flag expecting %02x, was %02x", tt.flagLeft, s.Flag)
			}
		})
	}
}

func TestService_Request(t *testing.T) {
	s := NewService()
	s.Request(TimerFlag)
	s.Request(JoypadFlag)
	if s.Flag != TimerFlag|JoypadFlag {
		t.Errorf("Flag expecting %02x, was %02x", TimerFlag|JoypadFlag, s.Flag)
	}
	if s.HasInterrupts() {
		t.Errorf("expecting no pending interrupts without Enable")
	}
	s.Enable = JoypadFlag
	if s.Pending() != JoypadFlag {
		t.Errorf("Pending expecting %02x, was %02x", JoypadFlag, s.Pending())
	}
	s.Reset()
	if s.Flag != 0 || s.Enable != 0 {
		t.Errorf("expecting cleared registers, was %02x/%02x", s.Flag, s.Enable)
	}
}
