package cbor

// CBOR major types, the top three bits of an item header byte.
const (
	majorTypeUint   uint8 = 0 // unsigned integer
	majorTypeNegInt uint8 = 1 // negative integer
	majorTypeBytes  uint8 = 2 // byte string
	majorTypeText   uint8 = 3 // text string
	majorTypeArray  uint8 = 4 // array
	majorTypeMap    uint8 = 5 // map
	majorTypeTag    uint8 = 6 // semantic tag
	majorTypeSimple uint8 = 7 // simple values and floats
)

// Additional information values, the low five bits of an item header byte.
// Values 28 through 30 are reserved and malformed everywhere.
const (
	addInfoDirect     uint8 = 23 // highest literal length
	addInfoUint8      uint8 = 24
	addInfoUint16     uint8 = 25
	addInfoUint32     uint8 = 26
	addInfoUint64     uint8 = 27
	addInfoIndefinite uint8 = 31
)

// Simple value codes under major type 7.
const (
	simpleFalse     uint8 = 20
	simpleTrue      uint8 = 21
	simpleNull      uint8 = 22
	simpleUndefined uint8 = 23
	simpleFloat16   uint8 = 25
	simpleFloat32   uint8 = 26
	simpleFloat64   uint8 = 27
	simpleBreak     uint8 = 31
)

// defaultMaxDepth bounds item recursion when DecodeOptions.MaxDepth is
// zero. It should only realistically be hit by adversarial data trying
// to exhaust the stack.
const defaultMaxDepth = 100000

func makeByte(majorType, addInfo uint8) byte {
	return byte((majorType << 5) | addInfo)
}

func getMajorType(b byte) uint8 {
	return (b >> 5) & 0x07
}

func getAddInfo(b byte) uint8 {
	return b & 0x1f
}
