package packtypes

// BinData is used to hold raw binary blob information for structs that need to
// survive transcoding through text-based formats. The json encoder hexifies this
// data for transport; binary formats carry it as-is.
type BinData []byte
