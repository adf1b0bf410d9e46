package packet

// packetNames lists every assigned identifier, shaped or not. Decode uses
// it to distinguish an identifier outside the contract (unknown-packet-id)
// from one whose shape this build does not define yet
// (unimplemented-packet).
var packetNames = map[uint32]string{
	IDLogin:                         "Login",
	IDPlayStatus:                    "PlayStatus",
	IDServerToClientHandshake:       "ServerToClientHandshake",
	IDClientToServerHandshake:       "ClientToServerHandshake",
	IDDisconnect:                    "Disconnect",
	IDResourcePacksInfo:             "ResourcePacksInfo",
	IDResourcePackStack:             "ResourcePackStack",
	IDResourcePackClientResponse:    "ResourcePackClientResponse",
	IDTextMessage:                   "TextMessage",
	IDSetTime:                       "SetTime",
	IDStartGame:                     "StartGame",
	IDAddPlayer:                     "AddPlayer",
	IDAddActor:                      "AddActor",
	IDRemoveActor:                   "RemoveActor",
	IDAddItemActor:                  "AddItemActor",
	IDServerPlayerPostMovePosition:  "ServerPlayerPostMovePosition",
	IDTakeItemActor:                 "TakeItemActor",
	IDMoveActor:                     "MoveActor",
	IDMovePlayer:                    "MovePlayer",
	IDRiderJump:                     "RiderJump",
	IDUpdateBlock:                   "UpdateBlock",
	IDAddPainting:                   "AddPainting",
	IDTickSync:                      "TickSync",
	IDLevelSoundEventOld:            "LevelSoundEventOld",
	IDLevelEvent:                    "LevelEvent",
	IDBlockEvent:                    "BlockEvent",
	IDActorEvent:                    "ActorEvent",
	IDMobEffect:                     "MobEffect",
	IDUpdateAttributes:              "UpdateAttributes",
	IDInventoryTransaction:          "InventoryTransaction",
	IDMobEquipment:                  "MobEquipment",
	IDMobArmorEquipment:             "MobArmorEquipment",
	IDInteract:                      "Interact",
	IDBlockPickRequest:              "BlockPickRequest",
	IDActorPickRequest:              "ActorPickRequest",
	IDPlayerAction:                  "PlayerAction",
	IDHurtArmor:                     "HurtArmor",
	IDSetActorData:                  "SetActorData",
	IDSetActorMotion:                "SetActorMotion",
	IDSetActorLink:                  "SetActorLink",
	IDSetHealth:                     "SetHealth",
	IDSetSpawnPosition:              "SetSpawnPosition",
	IDAnimate:                       "Animate",
	IDRespawn:                       "Respawn",
	IDContainerOpen:                 "ContainerOpen",
	IDContainerClose:                "ContainerClose",
	IDPlayerHotbar:                  "PlayerHotbar",
	IDInventoryContent:              "InventoryContent",
	IDInventorySlot:                 "InventorySlot",
	IDContainerSetData:              "ContainerSetData",
	IDCraftingData:                  "CraftingData",
	IDCraftingEvent:                 "CraftingEvent",
	IDGUIDataPickItem:               "GUIDataPickItem",
	IDAdventureSettings:             "AdventureSettings",
	IDBlockActorData:                "BlockActorData",
	IDPlayerInput:                   "PlayerInput",
	IDLevelChunk:                    "LevelChunk",
	IDSetCommandsEnabled:            "SetCommandsEnabled",
	IDSetDifficulty:                 "SetDifficulty",
	IDChangeDimension:               "ChangeDimension",
	IDSetPlayerGameType:             "SetPlayerGameType",
	IDPlayerList:                    "PlayerList",
	IDSimpleEvent:                   "SimpleEvent",
	IDTelemetryEvent:                "TelemetryEvent",
	IDSpawnExperienceOrb:            "SpawnExperienceOrb",
	IDClientBoundMapItemData:        "ClientBoundMapItemData",
	IDMapInfoRequest:                "MapInfoRequest",
	IDRequestChunkRadius:            "RequestChunkRadius",
	IDChunkRadiusUpdated:            "ChunkRadiusUpdated",
	IDItemFrameDropItem:             "ItemFrameDropItem",
	IDGameRulesChanged:              "GameRulesChanged",
	IDCamera:                        "Camera",
	IDBossEvent:                     "BossEvent",
	IDShowCredits:                   "ShowCredits",
	IDAvailableCommands:             "AvailableCommands",
	IDCommandRequest:                "CommandRequest",
	IDCommandBlockUpdate:            "CommandBlockUpdate",
	IDCommandOutput:                 "CommandOutput",
	IDUpdateTrade:                   "UpdateTrade",
	IDUpdateEquip:                   "UpdateEquip",
	IDResourcePackDataInfo:          "ResourcePackDataInfo",
	IDResourcePackChunkData:         "ResourcePackChunkData",
	IDResourcePackChunkRequest:      "ResourcePackChunkRequest",
	IDTransfer:                      "Transfer",
	IDPlaySound:                     "PlaySound",
	IDStopSound:                     "StopSound",
	IDSetTitle:                      "SetTitle",
	IDAddBehaviorTree:               "AddBehaviorTree",
	IDStructureBlockUpdate:          "StructureBlockUpdate",
	IDShowStoreOffer:                "ShowStoreOffer",
	IDPurchaseReceipt:               "PurchaseReceipt",
	IDPlayerSkin:                    "PlayerSkin",
	IDSubClientLogin:                "SubClientLogin",
	IDAutomationClientConnect:       "AutomationClientConnect",
	IDSetLastHurtBy:                 "SetLastHurtBy",
	IDBookEdit:                      "BookEdit",
	IDNPCRequest:                    "NPCRequest",
	IDPhotoTransfer:                 "PhotoTransfer",
	IDModalFormRequest:              "ModalFormRequest",
	IDModalFormResponse:             "ModalFormResponse",
	IDServerSettingsRequest:         "ServerSettingsRequest",
	IDServerSettingsResponse:        "ServerSettingsResponse",
	IDShowProfile:                   "ShowProfile",
	IDSetDefaultGameType:            "SetDefaultGameType",
	IDRemoveObjective:               "RemoveObjective",
	IDSetDisplayObjective:           "SetDisplayObjective",
	IDSetScore:                      "SetScore",
	IDLabTable:                      "LabTable",
	IDUpdateBlockSynced:             "UpdateBlockSynced",
	IDMoveActorDelta:                "MoveActorDelta",
	IDSetScoreboardIdentity:         "SetScoreboardIdentity",
	IDSetLocalPlayerAsInitialized:   "SetLocalPlayerAsInitialized",
	IDUpdateSoftEnum:                "UpdateSoftEnum",
	IDNetworkStackLatency:           "NetworkStackLatency",
	IDScriptCustomEvent:             "ScriptCustomEvent",
	IDSpawnParticleEffect:           "SpawnParticleEffect",
	IDAvailableActorIdentifiers:     "AvailableActorIdentifiers",
	IDLevelSoundEventV2:             "LevelSoundEventV2",
	IDNetworkChunkPublisherUpdate:   "NetworkChunkPublisherUpdate",
	IDBiomeDefinitionList:           "BiomeDefinitionList",
	IDLevelSoundEvent:               "LevelSoundEvent",
	IDLevelEventGeneric:             "LevelEventGeneric",
	IDLecternUpdate:                 "LecternUpdate",
	IDVideoStreamConnect:            "VideoStreamConnect",
	IDClientCacheStatus:             "ClientCacheStatus",
	IDOnScreenTextureAnimation:      "OnScreenTextureAnimation",
	IDMapCreateLockedCopy:           "MapCreateLockedCopy",
	IDStructureTemplateDataRequest:  "StructureTemplateDataRequest",
	IDStructureTemplateDataResponse: "StructureTemplateDataResponse",
	IDUpdateBlockProperties:         "UpdateBlockProperties",
	IDClientCacheBlobStatus:         "ClientCacheBlobStatus",
	IDClientCacheMissResponse:       "ClientCacheMissResponse",
	IDNetworkSettings:               "NetworkSettings",
	IDPlayerAuthInput:               "PlayerAuthInput",
	IDCreativeContent:               "CreativeContent",
	IDPlayerEnchantOptions:          "PlayerEnchantOptions",
	IDItemStackRequest:              "ItemStackRequest",
	IDItemStackResponse:             "ItemStackResponse",
	IDUpdatePlayerGameType:          "UpdatePlayerGameType",
	IDEmoteList:                     "EmoteList",
	IDDebugInfo:                     "DebugInfo",
	IDPacketViolationWarning:        "PacketViolationWarning",
	IDCorrectPlayerMovePrediction:   "CorrectPlayerMovePrediction",
	IDItemComponent:                 "ItemComponent",
	IDFilterText:                    "FilterText",
	IDUpdateSubChunkBlocks:          "UpdateSubChunkBlocks",
	IDSubChunk:                      "SubChunk",
	IDSubChunkRequest:               "SubChunkRequest",
	IDDimensionData:                 "DimensionData",
	IDToastRequest:                  "ToastRequest",
	IDRequestNetworkSettings:        "RequestNetworkSettings",
	IDAlexEntityAnimation:           "AlexEntityAnimation",
}

// registry maps each shaped identifier to its packet constructor. One row
// per packet; both the encoder and the decoder derive from the shape's
// Marshal method, so registering here is all a new packet needs.
var registry = map[uint32]func() Packet{
	IDLogin:                        func() Packet { return &Login{} },
	IDPlayStatus:                   func() Packet { return &PlayStatus{} },
	IDServerToClientHandshake:      func() Packet { return &ServerToClientHandshake{} },
	IDDisconnect:                   func() Packet { return &Disconnect{} },
	IDResourcePacksInfo:            func() Packet { return &ResourcePacksInfo{} },
	IDResourcePackStack:            func() Packet { return &ResourcePackStack{} },
	IDResourcePackClientResponse:   func() Packet { return &ResourcePackClientResponse{} },
	IDTextMessage:                  func() Packet { return &TextMessage{} },
	IDSetTime:                      func() Packet { return &SetTime{} },
	IDStartGame:                    func() Packet { return &StartGame{} },
	IDAddActor:                     func() Packet { return &AddActor{} },
	IDRemoveActor:                  func() Packet { return &RemoveActor{} },
	IDServerPlayerPostMovePosition: func() Packet { return &ServerPlayerPostMovePosition{} },
	IDMovePlayer:                   func() Packet { return &MovePlayer{} },
	IDAddPainting:                  func() Packet { return &AddPainting{} },
	IDInventoryTransaction:         func() Packet { return &InventoryTransaction{} },
	IDMobEquipment:                 func() Packet { return &MobEquipment{} },
	IDInteract:                     func() Packet { return &Interact{} },
	IDPlayerAction:                 func() Packet { return &PlayerAction{} },
	IDAnimate:                      func() Packet { return &Animate{} },
	IDContainerOpen:                func() Packet { return &ContainerOpen{} },
	IDContainerClose:               func() Packet { return &ContainerClose{} },
	IDPlayerHotbar:                 func() Packet { return &PlayerHotbar{} },
	IDInventoryContent:             func() Packet { return &InventoryContent{} },
	IDLevelChunk:                   func() Packet { return &LevelChunk{} },
	IDRequestChunkRadius:           func() Packet { return &RequestChunkRadius{} },
	IDChunkRadiusUpdated:           func() Packet { return &ChunkRadiusUpdated{} },
	IDCamera:                       func() Packet { return &Camera{} },
	IDCommandRequest:               func() Packet { return &CommandRequest{} },
	IDSetTitle:                     func() Packet { return &SetTitle{} },
	IDModalFormRequest:             func() Packet { return &ModalFormRequest{} },
	IDModalFormResponse:            func() Packet { return &ModalFormResponse{} },
	IDServerSettingsRequest:        func() Packet { return &ServerSettingsRequest{} },
	IDServerSettingsResponse:       func() Packet { return &ServerSettingsResponse{} },
	IDSetLocalPlayerAsInitialized:  func() Packet { return &SetLocalPlayerAsInitialized{} },
	IDClientCacheStatus:            func() Packet { return &ClientCacheStatus{} },
	IDClientCacheBlobStatus:        func() Packet { return &ClientCacheBlobStatus{} },
	IDNetworkSettings:              func() Packet { return &NetworkSettings{} },
	IDPlayerAuthInput:              func() Packet { return &PlayerAuthInput{} },
	IDEmoteList:                    func() Packet { return &EmoteList{} },
	IDDebugInfo:                    func() Packet { return &DebugInfo{} },
	IDPacketViolationWarning:       func() Packet { return &PacketViolationWarning{} },
	IDCorrectPlayerMovePrediction:  func() Packet { return &CorrectPlayerMovePrediction{} },
	IDToastRequest:                 func() Packet { return &ToastRequest{} },
	IDRequestNetworkSettings:       func() Packet { return &RequestNetworkSettings{} },
}

// PacketName returns the contract name of id, or "" when the identifier is
// not assigned.
func PacketName(id uint32) string {
	return packetNames[id]
}
