package ines

import "testing"

func TestVerticalMirroring(t *testing.T) {
	// Bit 0 decides alone, whatever the other bits hold.
	for _, flags6 := range []byte{0x01, 0xFF, 0x09} {
		if !verticalMirroring(flags6) {
			t.Errorf("verticalMirroring(0x%02x): got=false, want=true", flags6)
		}
	}
	for _, flags6 := range []byte{0x00, 0xFE, 0x08} {
		if verticalMirroring(flags6) {
			t.Errorf("verticalMirroring(0x%02x): got=true, want=false", flags6)
		}
	}
}

func TestFourScreenVRAM(t *testing.T) {
	for _, flags6 := range []byte{0x08, 0x09, 0xFF} {
		if !fourScreenVRAM(flags6) {
			t.Errorf("fourScreenVRAM(0x%02x): got=false, want=true", flags6)
		}
	}
	if fourScreenVRAM(0xF7) {
		t.Errorf("fourScreenVRAM(0xf7): got=true, want=false")
	}
}

func TestHasBattery(t *testing.T) {
	if !hasBattery(0x02) {
		t.Errorf("hasBattery(0x02): got=false, want=true")
	}
	if hasBattery(0xFD) {
		t.Errorf("hasBattery(0xfd): got=true, want=false")
	}
}

func TestTimingMode(t *testing.T) {
	tests := []struct {
		flags12 byte
		want    Timing
	}{
		{0x00, TimingNTSC},
		{0x01, TimingPAL},
		{0x02, TimingMultiRegion},
		{0x03, TimingDendy},
		{0xFC, TimingNTSC}, // high bits do not matter
	}
	for _, tt := range tests {
		if got := timingMode(tt.flags12); got != tt.want {
			t.Errorf("timingMode(0x%02x): got=%d, want=%d", tt.flags12, got, tt.want)
		}
	}
}
