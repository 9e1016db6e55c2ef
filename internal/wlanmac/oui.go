package wlanmac

// vendorOUIs lists the prefixes accepted as factory-assigned addresses.
// Order matters: lookups return the first matching entry.
var vendorOUIs = [...][3]byte{
	{0x9C, 0x99, 0xA0},
	{0x18, 0x59, 0x36},
	{0x98, 0xFA, 0xE3},
	{0x64, 0x09, 0x80},
	{0x8C, 0xBE, 0xBE},
	{0xF8, 0xA4, 0x5F},
	{0xC4, 0x0B, 0xCB},
	{0xEC, 0xD0, 0x9F},
	{0xE4, 0x46, 0xDA},
	{0xF4, 0xF5, 0xDB},
	{0x28, 0xE3, 0x1F},
	{0x0C, 0x1D, 0xAF},
	{0x14, 0xF6, 0x5A},
	{0x74, 0x23, 0x44},
	{0xF0, 0xB4, 0x29},
	{0xD4, 0x97, 0x0B},
	{0x64, 0xCC, 0x2E},
	{0xB0, 0xE2, 0x35},
	{0x38, 0xA4, 0xED},
	{0xF4, 0x8B, 0x32},
	{0x3C, 0xBD, 0x3E},
	{0x4C, 0x49, 0xE3},
	{0x00, 0x9E, 0xC8},
	{0xAC, 0xF7, 0xF3},
	{0x10, 0x2A, 0xB3},
	{0x58, 0x44, 0x98},
	{0xA0, 0x86, 0xC6},
	{0x7C, 0x1D, 0xD9},
	{0x28, 0x6C, 0x07},
	{0xAC, 0xC1, 0xEE},
	{0x78, 0x02, 0xF8},
	{0x50, 0x8F, 0x4C},
	{0x68, 0xDF, 0xDD},
	{0xC4, 0x6A, 0xB7},
	{0xFC, 0x64, 0xBA},
	{0x20, 0x82, 0xC0},
	{0x34, 0x80, 0xB3},
	{0x74, 0x51, 0xBA},
	{0x64, 0xB4, 0x73},
	{0x34, 0xCE, 0x00},
	{0x00, 0xEC, 0x0A},
	{0x78, 0x11, 0xDC},
	{0x50, 0x64, 0x2B},
}

// Lookup returns the index of the first table entry equal to prefix.
func Lookup(prefix [3]byte) (int, bool) {
	for i, oui := range vendorOUIs {
		if oui == prefix {
			return i, true
		}
	}
	return -1, false
}

// OUIs returns a copy of the accepted prefixes in lookup order.
func OUIs() [][3]byte {
	out := make([][3]byte, len(vendorOUIs))
	copy(out, vendorOUIs[:])
	return out
}
