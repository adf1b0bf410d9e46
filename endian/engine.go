// Package endian provides byte order utilities for the game-packet codec.
//
// The Bedrock network protocol is little-endian almost everywhere; a handful
// of session-boundary fields (the Login protocol version, the PlayStatus
// status code) are big-endian. This package combines ByteOrder and
// AppendByteOrder from encoding/binary into a single EndianEngine interface
// so field codecs can take one value covering both read and append paths.
//
// The returned engines are the standard library's binary.LittleEndian and
// binary.BigEndian values: immutable, stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so any
// standard-library byte order can be passed where an EndianEngine is
// expected.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the wire default.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine, used for the rare
// big-endian session fields.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
