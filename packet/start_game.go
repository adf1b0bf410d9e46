package packet

import (
	"github.com/arloliu/bedrockproto/types"
	"github.com/arloliu/bedrockproto/wire"
)

// BlockProperty declares one custom block and its definition compound.
type BlockProperty struct {
	Name       string
	Properties map[string]any
}

func (p *BlockProperty) Marshal(io wire.IO) {
	io.String(&p.Name)
	io.CompoundTag(&p.Properties)
}

// ItemEntry maps one item name to the numeric runtime ID used by every
// other packet of the session.
type ItemEntry struct {
	Name           string
	RuntimeID      int16
	ComponentBased bool
}

func (e *ItemEntry) Marshal(io wire.IO) {
	io.String(&e.Name)
	io.Int16(&e.RuntimeID)
	io.Bool(&e.ComponentBased)
}

// StartGame spawns the player into the world, carrying the full level
// settings plus the session-wide registries (custom blocks, item runtime
// IDs) and the movement authority configuration.
type StartGame struct {
	TargetActorID                types.ActorUniqueID
	TargetRuntimeID              types.ActorRuntimeID
	ActorGameType                int32
	Position                     types.Vec3
	Rotation                     types.Vec2
	Settings                     types.LevelSettings
	LevelID                      string
	LevelName                    string
	TemplateContentIdentity      string
	Trial                        bool
	MovementSettings             types.PlayerMovementSettings
	CurrentTick                  int64
	EnchantmentSeed              int32
	BlockProperties              []BlockProperty
	Items                        []ItemEntry
	MultiplayerCorrelationID     string
	ServerAuthoritativeInventory bool
	GameVersion                  string
	PropertyData                 map[string]any
	ServerBlockStateChecksum     uint64
	ClientSideGeneration         bool
}

func (*StartGame) ID() uint32 { return IDStartGame }

func (pk *StartGame) Marshal(io wire.IO) {
	pk.TargetActorID.Marshal(io)
	pk.TargetRuntimeID.Marshal(io)
	io.Varint32(&pk.ActorGameType)
	pk.Position.Marshal(io)
	pk.Rotation.Marshal(io)
	pk.Settings.Marshal(io)
	io.String(&pk.LevelID)
	io.String(&pk.LevelName)
	io.String(&pk.TemplateContentIdentity)
	io.Bool(&pk.Trial)
	pk.MovementSettings.Marshal(io)
	io.Int64(&pk.CurrentTick)
	io.Varint32(&pk.EnchantmentSeed)
	wire.MarshalerSlice[BlockProperty](io, &pk.BlockProperties)
	wire.MarshalerSlice[ItemEntry](io, &pk.Items)
	io.String(&pk.MultiplayerCorrelationID)
	io.Bool(&pk.ServerAuthoritativeInventory)
	io.String(&pk.GameVersion)
	io.CompoundTag(&pk.PropertyData)
	io.Uint64(&pk.ServerBlockStateChecksum)
	io.Bool(&pk.ClientSideGeneration)
}
