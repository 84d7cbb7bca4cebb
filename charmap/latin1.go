package charmap

// Latin1 is ISO 8859-1 (Latin-1, Western European).
//
// The 0xA0-0xFF window maps byte-for-byte onto the same Unicode code points,
// which makes Latin-1 the identity prefix of Unicode.
var Latin1 = func() *Charmap {
	var high [256 - highBase]rune
	for i := range high {
		high[i] = rune(highBase + i)
	}

	return newCharmap("ISO-8859-1", high)
}()
