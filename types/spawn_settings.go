package types

import "github.com/arloliu/bedrockproto/wire"

// Spawn biome selection modes.
const (
	SpawnBiomeTypeDefault     int16 = 0
	SpawnBiomeTypeUserDefined int16 = 1
)

// SpawnSettings describes where and in which biome new players spawn.
type SpawnSettings struct {
	BiomeType        int16
	UserDefinedBiome string
	SpawnDimension   int32
}

func (s *SpawnSettings) Marshal(io wire.IO) {
	io.Int16(&s.BiomeType)
	io.String(&s.UserDefinedBiome)
	io.Varint32(&s.SpawnDimension)
}
