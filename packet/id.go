package packet

// Packet identifiers, the 10 low bits of the frame header.
//
// The assignment below is a versioned contract with the peer and must be
// maintained exactly; identifiers are sparse, with the gaps left by retired
// packets never reused. Identifiers 200-299 are reserved for spin-off
// titles; 224 is the only one of them in this table.
const (
	IDLogin                         uint32 = 1
	IDPlayStatus                    uint32 = 2
	IDServerToClientHandshake       uint32 = 3
	IDClientToServerHandshake       uint32 = 4
	IDDisconnect                    uint32 = 5
	IDResourcePacksInfo             uint32 = 6
	IDResourcePackStack             uint32 = 7
	IDResourcePackClientResponse    uint32 = 8
	IDTextMessage                   uint32 = 9
	IDSetTime                       uint32 = 10
	IDStartGame                     uint32 = 11
	IDAddPlayer                     uint32 = 12
	IDAddActor                      uint32 = 13
	IDRemoveActor                   uint32 = 14
	IDAddItemActor                  uint32 = 15
	IDServerPlayerPostMovePosition  uint32 = 16
	IDTakeItemActor                 uint32 = 17
	IDMoveActor                     uint32 = 18
	IDMovePlayer                    uint32 = 19
	IDRiderJump                     uint32 = 20
	IDUpdateBlock                   uint32 = 21
	IDAddPainting                   uint32 = 22
	IDTickSync                      uint32 = 23
	IDLevelSoundEventOld            uint32 = 24
	IDLevelEvent                    uint32 = 25
	IDBlockEvent                    uint32 = 26
	IDActorEvent                    uint32 = 27
	IDMobEffect                     uint32 = 28
	IDUpdateAttributes              uint32 = 29
	IDInventoryTransaction          uint32 = 30
	IDMobEquipment                  uint32 = 31
	IDMobArmorEquipment             uint32 = 32
	IDInteract                      uint32 = 33
	IDBlockPickRequest              uint32 = 34
	IDActorPickRequest              uint32 = 35
	IDPlayerAction                  uint32 = 36
	IDHurtArmor                     uint32 = 38
	IDSetActorData                  uint32 = 39
	IDSetActorMotion                uint32 = 40
	IDSetActorLink                  uint32 = 41
	IDSetHealth                     uint32 = 42
	IDSetSpawnPosition              uint32 = 43
	IDAnimate                       uint32 = 44
	IDRespawn                       uint32 = 45
	IDContainerOpen                 uint32 = 46
	IDContainerClose                uint32 = 47
	IDPlayerHotbar                  uint32 = 48
	IDInventoryContent              uint32 = 49
	IDInventorySlot                 uint32 = 50
	IDContainerSetData              uint32 = 51
	IDCraftingData                  uint32 = 52
	IDCraftingEvent                 uint32 = 53
	IDGUIDataPickItem               uint32 = 54
	IDAdventureSettings             uint32 = 55
	IDBlockActorData                uint32 = 56
	IDPlayerInput                   uint32 = 57
	IDLevelChunk                    uint32 = 58
	IDSetCommandsEnabled            uint32 = 59
	IDSetDifficulty                 uint32 = 60
	IDChangeDimension               uint32 = 61
	IDSetPlayerGameType             uint32 = 62
	IDPlayerList                    uint32 = 63
	IDSimpleEvent                   uint32 = 64
	IDTelemetryEvent                uint32 = 65
	IDSpawnExperienceOrb            uint32 = 66
	IDClientBoundMapItemData        uint32 = 67
	IDMapInfoRequest                uint32 = 68
	IDRequestChunkRadius            uint32 = 69
	IDChunkRadiusUpdated            uint32 = 70
	IDItemFrameDropItem             uint32 = 71
	IDGameRulesChanged              uint32 = 72
	IDCamera                        uint32 = 73
	IDBossEvent                     uint32 = 74
	IDShowCredits                   uint32 = 75
	IDAvailableCommands             uint32 = 76
	IDCommandRequest                uint32 = 77
	IDCommandBlockUpdate            uint32 = 78
	IDCommandOutput                 uint32 = 79
	IDUpdateTrade                   uint32 = 80
	IDUpdateEquip                   uint32 = 81
	IDResourcePackDataInfo          uint32 = 82
	IDResourcePackChunkData         uint32 = 83
	IDResourcePackChunkRequest      uint32 = 84
	IDTransfer                      uint32 = 85
	IDPlaySound                     uint32 = 86
	IDStopSound                     uint32 = 87
	IDSetTitle                      uint32 = 88
	IDAddBehaviorTree               uint32 = 89
	IDStructureBlockUpdate          uint32 = 90
	IDShowStoreOffer                uint32 = 91
	IDPurchaseReceipt               uint32 = 92
	IDPlayerSkin                    uint32 = 93
	IDSubClientLogin                uint32 = 94
	IDAutomationClientConnect       uint32 = 95
	IDSetLastHurtBy                 uint32 = 96
	IDBookEdit                      uint32 = 97
	IDNPCRequest                    uint32 = 98
	IDPhotoTransfer                 uint32 = 99
	IDModalFormRequest              uint32 = 100
	IDModalFormResponse             uint32 = 101
	IDServerSettingsRequest         uint32 = 102
	IDServerSettingsResponse        uint32 = 103
	IDShowProfile                   uint32 = 104
	IDSetDefaultGameType            uint32 = 105
	IDRemoveObjective               uint32 = 106
	IDSetDisplayObjective           uint32 = 107
	IDSetScore                      uint32 = 108
	IDLabTable                      uint32 = 109
	IDUpdateBlockSynced             uint32 = 110
	IDMoveActorDelta                uint32 = 111
	IDSetScoreboardIdentity         uint32 = 112
	IDSetLocalPlayerAsInitialized   uint32 = 113
	IDUpdateSoftEnum                uint32 = 114
	IDNetworkStackLatency           uint32 = 115
	IDScriptCustomEvent             uint32 = 117
	IDSpawnParticleEffect           uint32 = 118
	IDAvailableActorIdentifiers     uint32 = 119
	IDLevelSoundEventV2             uint32 = 120
	IDNetworkChunkPublisherUpdate   uint32 = 121
	IDBiomeDefinitionList           uint32 = 122
	IDLevelSoundEvent               uint32 = 123
	IDLevelEventGeneric             uint32 = 124
	IDLecternUpdate                 uint32 = 125
	IDVideoStreamConnect            uint32 = 126
	IDClientCacheStatus             uint32 = 129
	IDOnScreenTextureAnimation      uint32 = 130
	IDMapCreateLockedCopy           uint32 = 131
	IDStructureTemplateDataRequest  uint32 = 132
	IDStructureTemplateDataResponse uint32 = 133
	IDUpdateBlockProperties         uint32 = 134
	IDClientCacheBlobStatus         uint32 = 135
	IDClientCacheMissResponse       uint32 = 136
	IDNetworkSettings               uint32 = 143
	IDPlayerAuthInput               uint32 = 144
	IDCreativeContent               uint32 = 145
	IDPlayerEnchantOptions          uint32 = 146
	IDItemStackRequest              uint32 = 147
	IDItemStackResponse             uint32 = 148
	IDUpdatePlayerGameType          uint32 = 151
	IDEmoteList                     uint32 = 152
	IDDebugInfo                     uint32 = 155
	IDPacketViolationWarning        uint32 = 156
	IDCorrectPlayerMovePrediction   uint32 = 161
	IDItemComponent                 uint32 = 162
	IDFilterText                    uint32 = 163
	IDUpdateSubChunkBlocks          uint32 = 172
	IDSubChunk                      uint32 = 174
	IDSubChunkRequest               uint32 = 175
	IDDimensionData                 uint32 = 180
	IDToastRequest                  uint32 = 186
	IDRequestNetworkSettings        uint32 = 193
	IDAlexEntityAnimation           uint32 = 224
)
