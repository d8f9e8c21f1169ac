package ines

// ROM sizes are unit counts: byte 4 counts 16 KiB PRG units, byte 5
// counts 8 KiB CHR units. NES 2.0 widens each count to 12 bits with a
// nibble from byte 9 and reserves top nibble 0xF for an
// exponent/multiplier form, https://www.nesdev.org/wiki/NES_2.0#PRG-ROM_Area

func prgROMSize(format Format, header []byte) uint64 {
	size := uint64(header[4])
	if format == FormatNES2 {
		size |= uint64(header[9]&0x0F) << 8
	}
	return decodeSize(size)
}

func chrROMSize(format Format, header []byte) uint64 {
	size := uint64(header[5])
	if format == FormatNES2 {
		size |= uint64(header[9]&0xF0) << 4
	}
	return decodeSize(size)
}

// decodeSize resolves the exponent/multiplier form: a 12-bit count
// whose top nibble is 0xF encodes 2^E * (M*2+1) units, M in bits 0-1
// and E in bits 2-7. Any other value is a plain unit count.
func decodeSize(size uint64) uint64 {
	if size>>8 != 0xF {
		return size
	}
	multiplier := size & 0x03
	exponent := (size & 0xFF) >> 2
	return (1 << exponent) * (multiplier*2 + 1)
}
