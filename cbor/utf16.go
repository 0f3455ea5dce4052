package cbor

import "unicode/utf16"

// appendCodeUnits decodes byteLen encoded bytes at the cursor into UTF-16
// code units appended to units. The count is kept signed: a multi-byte
// sequence subtracts its extra bytes after consuming them, so a sequence
// that straddles the declared end drives the count negative and the loop
// stops without replaying the overrun.
//
// Decoding is permissive. Continuation bytes are taken as-is, two-byte
// and three-byte leads keep five and four payload bits, and four-byte
// leads also keep four bits, so reconstructed values can reach 0x3FFFFF
// and are split into surrogate halves arithmetically, without range or
// pairing checks.
func (d *decoder) appendCodeUnits(units []uint16, byteLen int) ([]uint16, error) {
	for remaining := byteLen; remaining > 0; remaining-- {
		b, err := d.readUint8()
		if err != nil {
			return nil, err
		}
		v := uint32(b)
		if b&0x80 != 0 {
			switch {
			case b < 0xe0:
				b1, err := d.readUint8()
				if err != nil {
					return nil, err
				}
				v = uint32(b&0x1f)<<6 | uint32(b1&0x3f)
				remaining--
			case b < 0xf0:
				b1, err := d.readUint8()
				if err != nil {
					return nil, err
				}
				b2, err := d.readUint8()
				if err != nil {
					return nil, err
				}
				v = uint32(b&0x0f)<<12 | uint32(b1&0x3f)<<6 | uint32(b2&0x3f)
				remaining -= 2
			default:
				b1, err := d.readUint8()
				if err != nil {
					return nil, err
				}
				b2, err := d.readUint8()
				if err != nil {
					return nil, err
				}
				b3, err := d.readUint8()
				if err != nil {
					return nil, err
				}
				v = uint32(b&0x0f)<<18 | uint32(b1&0x3f)<<12 | uint32(b2&0x3f)<<6 | uint32(b3&0x3f)
				remaining -= 3
			}
		}
		if v < 0x10000 {
			units = append(units, uint16(v))
		} else {
			v -= 0x10000
			units = append(units, 0xd800|uint16(v>>10), 0xdc00|uint16(v&0x3ff))
		}
	}
	return units, nil
}

// materializeText converts assembled code units into a string. Unpaired
// surrogates become U+FFFD.
func materializeText(units []uint16) Text {
	if len(units) == 0 {
		return ""
	}
	return Text(string(utf16.Decode(units)))
}
