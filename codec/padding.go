package codec

// PaddingType selects how an incomplete final group is represented on encode
// and validated on decode.
type PaddingType uint8

const (
	// PaddingNone emits no pad characters. Decode accepts any length whose
	// total bit count is consistent with a whole number of output bytes.
	PaddingNone PaddingType = 0x1

	// PaddingFixed pads encoded output to a multiple of the scheme's block
	// size with a designated pad character. Decode requires block-aligned
	// input and accepts the pad character only as a suffix of the final block.
	PaddingFixed PaddingType = 0x2
)

func (p PaddingType) String() string {
	switch p {
	case PaddingNone:
		return "None"
	case PaddingFixed:
		return "Fixed"
	default:
		return "Unknown"
	}
}
