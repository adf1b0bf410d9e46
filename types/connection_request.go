package types

import (
	"fmt"

	"github.com/arloliu/bedrockproto/errs"
	"github.com/arloliu/bedrockproto/wire"
)

// ConnectionRequest is the login payload: the certificate chain JSON and
// the client data JWT, each with its own fixed-width length prefix, wrapped
// together in one varuint-prefixed envelope.
type ConnectionRequest struct {
	CertificateChain []byte
	ClientData       []byte
}

func (c *ConnectionRequest) Marshal(io wire.IO) {
	if io.Reading() {
		c.unmarshal(io)
		return
	}

	total := uint32(4 + len(c.CertificateChain) + 4 + len(c.ClientData))
	io.Varuint32(&total)

	chainLen := uint32(len(c.CertificateChain))
	io.Uint32(&chainLen)
	io.RemainingBytes(&c.CertificateChain)

	dataLen := uint32(len(c.ClientData))
	io.Uint32(&dataLen)
	io.RemainingBytes(&c.ClientData)
}

func (c *ConnectionRequest) unmarshal(io wire.IO) {
	r, ok := io.(*wire.Reader)
	if !ok {
		return
	}

	var total uint32
	io.Varuint32(&total)
	if int64(total) > int64(r.Remaining()) {
		io.Fail(fmt.Errorf("%w: connection request of %d bytes exceeds frame", errs.ErrTruncated, total))
		return
	}

	var chainLen uint32
	io.Uint32(&chainLen)
	c.CertificateChain = r.Take(int(chainLen))

	var dataLen uint32
	io.Uint32(&dataLen)
	c.ClientData = r.Take(int(dataLen))
}
