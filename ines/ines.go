// Package ines decodes the iNES / NES 2.0 cartridge image header into a
// Cartridge descriptor.
//
// Reference:
//   https://www.nesdev.org/wiki/INES
//   https://www.nesdev.org/wiki/NES_2.0
package ines

const (
	headerSizeBytes       = 16     // The valid iNES header has 16 bytes
	trainerSizeBytes      = 512    // Trainer block at $7000~$71FF
	prgROMSizeUnit        = 0x4000 // 16384 bytes
	chrROMSizeUnit        = 0x2000 // 8192 bytes
	msDOSEOF         byte = 0x1A
)
