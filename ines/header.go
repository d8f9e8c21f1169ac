package ines

// Format selects how header bytes 8-15 are interpreted.
type Format int

const (
	// FormatINES is the legacy dialect, bytes 8-15 are padding.
	FormatINES Format = iota
	// FormatNES2 is the NES 2.0 dialect, bytes 8-15 carry extra
	// mapper, size and timing fields.
	FormatNES2
)

func (f Format) String() string {
	if f == FormatNES2 {
		return "NES 2.0"
	}
	return "iNES"
}

// validate checks that data holds a full header starting with
// "NES" + the MS-DOS EOF marker.
func validate(data []byte) error {
	if len(data) < headerSizeBytes {
		return ErrTooShort
	}
	magic := [4]byte{byte('N'), byte('E'), byte('S'), msDOSEOF}
	for i, want := range magic {
		if data[i] != want {
			return &InvalidHeaderError{Index: i}
		}
	}
	return nil
}

// detectFormat reads bits 2-3 of byte 7: the value 0b10 means NES 2.0,
// every other pattern means legacy iNES.
func detectFormat(flags7 byte) Format {
	if (flags7&0x0C)>>2 == 2 {
		return FormatNES2
	}
	return FormatINES
}
