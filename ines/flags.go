package ines

// Flags 6 bit assignments, https://www.nesdev.org/wiki/INES#Flags_6
// bit           3       2       1         0
// meaning four-screen trainer battery mirroring

func verticalMirroring(flags6 byte) bool {
	return flags6&0x01 != 0
}

func hasBattery(flags6 byte) bool {
	return flags6&0x02 != 0
}

func hasTrainer(flags6 byte) bool {
	return flags6&0x04 != 0
}

func fourScreenVRAM(flags6 byte) bool {
	return flags6&0x08 != 0
}

// Timing is the CPU/PPU timing mode from the low 2 bits of NES 2.0
// byte 12.
type Timing int

const (
	TimingNTSC Timing = iota
	TimingPAL
	TimingMultiRegion
	TimingDendy
)

// timingMode decodes byte 12. Every code is legal; the result is not
// yet stored on Cartridge.
func timingMode(flags12 byte) Timing {
	return Timing(flags12 & 0x03)
}
