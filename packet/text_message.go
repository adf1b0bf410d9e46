package packet

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// Text message types.
const (
	TextTypeRaw uint8 = iota
	TextTypeChat
	TextTypeTranslation
	TextTypePopup
	TextTypeJukeboxPopup
	TextTypeTip
	TextTypeSystem
	TextTypeWhisper
	TextTypeAnnouncement
	TextTypeObjectWhisper
	TextTypeObject
	TextTypeObjectAnnouncement
)

// TextMessage carries chat and system text. The payload after the type and
// translation flag is a tagged union: chat-like types name their source,
// translatable types carry substitution parameters.
type TextMessage struct {
	TextType         uint8
	NeedsTranslation bool
	SourceName       string
	Message          string
	Parameters       []string
}

func (*TextMessage) ID() uint32 { return IDTextMessage }

func (pk *TextMessage) Marshal(io wire.IO) {
	io.Uint8(&pk.TextType)
	io.Bool(&pk.NeedsTranslation)

	switch pk.TextType {
	case TextTypeChat, TextTypeWhisper, TextTypeAnnouncement:
		io.String(&pk.SourceName)
		io.String(&pk.Message)
	case TextTypeRaw, TextTypeTip, TextTypeSystem,
		TextTypeObject, TextTypeObjectWhisper, TextTypeObjectAnnouncement:
		io.String(&pk.Message)
	case TextTypeTranslation, TextTypePopup, TextTypeJukeboxPopup:
		io.String(&pk.Message)
		wire.Slice(io, &pk.Parameters, func(io wire.IO, s *string) {
			io.String(s)
		})
	default:
		io.Fail(fmt.Errorf("%w: TextType tag %d", errs.ErrUnknownVariant, pk.TextType))
	}
}
