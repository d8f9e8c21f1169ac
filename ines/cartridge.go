package ines

import (
	"fmt"
	"math"
)

// Cartridge is the decoded cartridge image descriptor. All fields are
// set by Decode and never change afterwards, except PRGROM and CHRROM
// which Load fills from the image payload.
type Cartridge struct {
	Format Format

	// PRGROMSize counts 16 KiB (16384-byte) PRG ROM units.
	PRGROMSize uint64
	// CHRROMSize counts 8 KiB (8192-byte) CHR ROM units. Zero means
	// the cartridge carries CHR RAM instead of CHR ROM.
	CHRROMSize uint64

	// Mapper is the 12-bit memory mapper number. Legacy images can
	// only express the low 8 bits.
	Mapper uint16

	// VerticalMirroring selects the nametable mirroring axis. It is
	// meaningless when FourScreenVRAM is set.
	VerticalMirroring bool
	FourScreenVRAM    bool
	// HasBattery means battery-backed PRG RAM at $6000~$7FFF or other
	// persistent memory.
	HasBattery bool

	// Trainer is the 512-byte block following the header, nil when
	// the image has none.
	Trainer []byte

	// PRGROM and CHRROM hold the ROM payload once Load has run;
	// Decode leaves them nil.
	PRGROM []byte
	CHRROM []byte
}

// PRGROMBytes returns the PRG ROM size in bytes. Exponent-encoded
// headers can declare more units than a uint64 byte count can hold,
// in which case the result saturates at math.MaxUint64.
func (c *Cartridge) PRGROMBytes() uint64 {
	if c.PRGROMSize > math.MaxUint64/prgROMSizeUnit {
		return math.MaxUint64
	}
	return c.PRGROMSize * prgROMSizeUnit
}

// CHRROMBytes returns the CHR ROM size in bytes, saturating at
// math.MaxUint64 like PRGROMBytes.
func (c *Cartridge) CHRROMBytes() uint64 {
	if c.CHRROMSize > math.MaxUint64/chrROMSizeUnit {
		return math.MaxUint64
	}
	return c.CHRROMSize * chrROMSizeUnit
}

// Decode decodes the 16-byte header at the start of data, plus the
// optional trainer block right after it. It reads data without
// mutating or retaining it, and it is strict only about structure:
// a short input or a broken magic aborts, while unusual field values
// (zero-sized ROMs, unknown mappers) decode fine.
func Decode(data []byte) (*Cartridge, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	header := data[:headerSizeBytes]
	format := detectFormat(header[7])
	c := &Cartridge{
		Format:            format,
		PRGROMSize:        prgROMSize(format, header),
		CHRROMSize:        chrROMSize(format, header),
		Mapper:            mapperNumber(format, header[6], header[7], header[8]),
		VerticalMirroring: verticalMirroring(header[6]),
		FourScreenVRAM:    fourScreenVRAM(header[6]),
		HasBattery:        hasBattery(header[6]),
	}
	if hasTrainer(header[6]) {
		if len(data) < headerSizeBytes+trainerSizeBytes {
			// The flag created the expectation, so the flag byte is
			// what gets blamed.
			return nil, &InvalidHeaderError{Index: 6}
		}
		c.Trainer = make([]byte, trainerSizeBytes)
		copy(c.Trainer, data[headerSizeBytes:headerSizeBytes+trainerSizeBytes])
	}
	return c, nil
}

// Load decodes data and fills PRGROM and CHRROM from the bytes
// following the header and trainer. Images shorter than their declared
// sizes load zero-padded so that under-dumped ROMs still map.
func Load(data []byte) (*Cartridge, error) {
	c, err := Decode(data)
	if err != nil {
		return nil, err
	}
	// Guard on unit counts, before any multiplication can wrap.
	if c.PRGROMSize > math.MaxInt/prgROMSizeUnit || c.CHRROMSize > math.MaxInt/chrROMSizeUnit {
		return nil, fmt.Errorf("ines: declared ROM sizes do not fit in memory: prg=%d units, chr=%d units", c.PRGROMSize, c.CHRROMSize)
	}
	c.PRGROM = make([]byte, c.PRGROMBytes())
	c.CHRROM = make([]byte, c.CHRROMBytes())
	payload := data[headerSizeBytes+len(c.Trainer):]
	n := copy(c.PRGROM, payload)
	copy(c.CHRROM, payload[n:])
	return c, nil
}
