package ines

// Mapper number nibble layout:
// bits          11-8        7-4         3-0
// source  byte 8 low byte 7 high byte 6 high
// The third nibble exists only in NES 2.0 images.
func mapperNumber(format Format, flags6, flags7, flags8 byte) uint16 {
	n := uint16(flags6&0xF0)>>4 | uint16(flags7&0xF0)
	if format == FormatNES2 {
		n |= uint16(flags8&0x0F) << 8
	}
	return n
}

// submapper extracts the NES 2.0 submapper nibble. Decoded for future
// use, not yet stored on Cartridge.
func submapper(flags8 byte) byte {
	return flags8 >> 4
}
