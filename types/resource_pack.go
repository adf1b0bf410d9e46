package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// ResourcePackInfo describes one downloadable pack offered during resource
// pack negotiation.
type ResourcePackInfo struct {
	UUID              string
	Version           string
	Size              uint64
	ContentKey        string
	SubPackName       string
	ContentIdentity   string
	HasScripts        bool
	RaytracingCapable bool
}

func (p *ResourcePackInfo) Marshal(io wire.IO) {
	io.String(&p.UUID)
	io.String(&p.Version)
	io.Uint64(&p.Size)
	io.String(&p.ContentKey)
	io.String(&p.SubPackName)
	io.String(&p.ContentIdentity)
	io.Bool(&p.HasScripts)
	io.Bool(&p.RaytracingCapable)
}

// BehaviourPackInfo describes one behaviour pack offered during resource
// pack negotiation. It carries the same descriptor fields as
// ResourcePackInfo minus the raytracing flag, which only texture packs
// declare.
type BehaviourPackInfo struct {
	UUID            string
	Version         string
	Size            uint64
	ContentKey      string
	SubPackName     string
	ContentIdentity string
	HasScripts      bool
}

func (p *BehaviourPackInfo) Marshal(io wire.IO) {
	io.String(&p.UUID)
	io.String(&p.Version)
	io.Uint64(&p.Size)
	io.String(&p.ContentKey)
	io.String(&p.SubPackName)
	io.String(&p.ContentIdentity)
	io.Bool(&p.HasScripts)
}

// StackPack is one entry of the applied resource pack stack.
type StackPack struct {
	UUID        string
	Version     string
	SubPackName string
}

func (p *StackPack) Marshal(io wire.IO) {
	io.String(&p.UUID)
	io.String(&p.Version)
	io.String(&p.SubPackName)
}

// Resource pack client response statuses.
const (
	PackResponseNone               uint8 = 0
	PackResponseRefused            uint8 = 1
	PackResponseSendPacks          uint8 = 2
	PackResponseAllPacksDownloaded uint8 = 3
	PackResponseCompleted          uint8 = 4
)

// PackResponseStatus is the client's answer in resource pack negotiation.
// Decode rejects values outside the defined set.
type PackResponseStatus uint8

func (s *PackResponseStatus) Marshal(io wire.IO) {
	v := uint8(*s)
	io.Uint8(&v)

	if io.Reading() {
		if v > PackResponseCompleted {
			io.Fail(fmt.Errorf("%w: pack response status %d", errs.ErrOutOfRange, v))
			return
		}
		*s = PackResponseStatus(v)
	}
}
