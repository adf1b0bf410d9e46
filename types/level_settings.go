package types

import "github.com/arloliu/bedrockproto/wire"

// Difficulty values carried in the level settings.
const (
	DifficultyPeaceful uint32 = 0
	DifficultyEasy     uint32 = 1
	DifficultyNormal   uint32 = 2
	DifficultyHard     uint32 = 3
)

// Game types assignable to the world or a single actor.
const (
	GameTypeSurvival  int32 = 0
	GameTypeCreative  int32 = 1
	GameTypeAdventure int32 = 2
)

// Generator types of the world terrain.
const (
	GeneratorLegacy    int32 = 0
	GeneratorOverworld int32 = 1
	GeneratorFlat      int32 = 2
	GeneratorNether    int32 = 3
	GeneratorEnd       int32 = 4
	GeneratorVoid      int32 = 5
)

// EducationSharedResourceURI is the button/link pair of an education
// edition shared resource.
type EducationSharedResourceURI struct {
	ButtonName string
	LinkURI    string
}

func (e *EducationSharedResourceURI) Marshal(io wire.IO) {
	io.String(&e.ButtonName)
	io.String(&e.LinkURI)
}

// NetworkPermissions is the trailing permissions block of the level
// settings.
type NetworkPermissions struct {
	ServerAuthSoundEnabled bool
}

func (n *NetworkPermissions) Marshal(io wire.IO) {
	io.Bool(&n.ServerAuthSoundEnabled)
}

// LevelSettings is the world configuration block of the StartGame packet.
// Field order and wire types are a bit-exact peer-visible contract; do not
// reorder.
type LevelSettings struct {
	Seed                           uint64
	SpawnSettings                  SpawnSettings
	GeneratorType                  int32
	WorldGameType                  int32
	HardcoreEnabled                bool
	Difficulty                     uint32
	DefaultSpawnBlock              BlockPos
	AchievementsDisabled           bool
	EditorWorld                    bool
	CreatedInEditor                bool
	ExportedFromEditor             bool
	DayCycleStopTime               int32
	EducationEditionOffer          int32
	EducationFeaturesEnabled       bool
	EducationProductID             string
	RainLevel                      float32
	LightningLevel                 float32
	ConfirmedPlatformLockedContent bool
	MultiplayerIntended            bool
	LANBroadcastingIntended        bool
	XboxBroadcastSetting           int32
	PlatformBroadcastSetting       int32
	CommandsEnabled                bool
	TexturePacksRequired           bool
	RuleData                       GameRules
	Experiments                    Experiments
	BonusChestEnabled              bool
	StartWithMapEnabled            bool
	PlayerPermission               PermissionLevel
	ServerChunkTickRange           int32
	HasLockedBehaviorPack          bool
	HasLockedResourcePack          bool
	FromLockedWorldTemplate        bool
	UseMSAGamertagsOnly            bool
	FromWorldTemplate              bool
	WorldTemplateOptionLocked      bool
	OnlySpawnV1Villagers           bool
	PersonaDisabled                bool
	CustomSkinsDisabled            bool
	EmoteChatMuted                 bool
	BaseGameVersion                string
	LimitedWorldWidth              int32
	LimitedWorldDepth              int32
	NewNether                      bool
	EducationSharedResource        EducationSharedResourceURI
	ForceExperimentalGameplay      bool
	ChatRestrictionLevel           uint8
	DisablePlayerInteractions      bool
}

func (s *LevelSettings) Marshal(io wire.IO) {
	io.Uint64(&s.Seed)
	s.SpawnSettings.Marshal(io)
	io.Varint32(&s.GeneratorType)
	io.Varint32(&s.WorldGameType)
	io.Bool(&s.HardcoreEnabled)
	io.Varuint32(&s.Difficulty)
	s.DefaultSpawnBlock.Marshal(io)
	io.Bool(&s.AchievementsDisabled)
	io.Bool(&s.EditorWorld)
	io.Bool(&s.CreatedInEditor)
	io.Bool(&s.ExportedFromEditor)
	io.Varint32(&s.DayCycleStopTime)
	io.Varint32(&s.EducationEditionOffer)
	io.Bool(&s.EducationFeaturesEnabled)
	io.String(&s.EducationProductID)
	io.Float32(&s.RainLevel)
	io.Float32(&s.LightningLevel)
	io.Bool(&s.ConfirmedPlatformLockedContent)
	io.Bool(&s.MultiplayerIntended)
	io.Bool(&s.LANBroadcastingIntended)
	io.Varint32(&s.XboxBroadcastSetting)
	io.Varint32(&s.PlatformBroadcastSetting)
	io.Bool(&s.CommandsEnabled)
	io.Bool(&s.TexturePacksRequired)
	s.RuleData.Marshal(io)
	s.Experiments.Marshal(io)
	io.Bool(&s.BonusChestEnabled)
	io.Bool(&s.StartWithMapEnabled)
	s.PlayerPermission.Marshal(io)
	io.Int32(&s.ServerChunkTickRange)
	io.Bool(&s.HasLockedBehaviorPack)
	io.Bool(&s.HasLockedResourcePack)
	io.Bool(&s.FromLockedWorldTemplate)
	io.Bool(&s.UseMSAGamertagsOnly)
	io.Bool(&s.FromWorldTemplate)
	io.Bool(&s.WorldTemplateOptionLocked)
	io.Bool(&s.OnlySpawnV1Villagers)
	io.Bool(&s.PersonaDisabled)
	io.Bool(&s.CustomSkinsDisabled)
	io.Bool(&s.EmoteChatMuted)
	io.String(&s.BaseGameVersion)
	io.Varint32(&s.LimitedWorldWidth)
	io.Varint32(&s.LimitedWorldDepth)
	io.Bool(&s.NewNether)
	s.EducationSharedResource.Marshal(io)
	io.Bool(&s.ForceExperimentalGameplay)
	io.Uint8(&s.ChatRestrictionLevel)
	io.Bool(&s.DisablePlayerInteractions)
}
