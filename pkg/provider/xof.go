package provider

import (
	"hash"
	"io"

	"github.com/cloudflare/circl/xof"
)

// sponge is an extendable-output function that can fork its state.
type sponge interface {
	io.Writer
	Reset()
	// fork returns an independent copy of the current absorbing state.
	fork() (sponge, error)
	// squeeze reads output from the sponge, ending its absorbing phase.
	squeeze(p []byte)
}

// xofHash exposes a sponge as a hash.Hash with a fixed output length.
// Sum squeezes a fork, so the running state keeps absorbing afterwards.
type xofHash struct {
	s         sponge
	size      int
	blockSize int
}

var _ hash.Cloner = (*xofHash)(nil)

func newXOFHash(s sponge, size, blockSize int) *xofHash {
	return &xofHash{s: s, size: size, blockSize: blockSize}
}

func (h *xofHash) Write(p []byte) (int, error) { return h.s.Write(p) }
func (h *xofHash) Reset()                      { h.s.Reset() }
func (h *xofHash) Size() int                   { return h.size }
func (h *xofHash) BlockSize() int              { return h.blockSize }

func (h *xofHash) Sum(b []byte) []byte {
	f, err := h.s.fork()
	if err != nil {
		// forks only fail on corrupted internal state
		panic("hashgate: xof fork: " + err.Error())
	}
	out := make([]byte, h.size)
	f.squeeze(out)
	return append(b, out...)
}

// Clone implements hash.Cloner.
func (h *xofHash) Clone() (hash.Cloner, error) {
	f, err := h.s.fork()
	if err != nil {
		return nil, err
	}
	return newXOFHash(f, h.size, h.blockSize), nil
}

// circlSponge adapts a circl XOF (k12, blake2xb, blake2xs).
type circlSponge struct {
	x xof.XOF
}

func (c circlSponge) Write(p []byte) (int, error) { return c.x.Write(p) }
func (c circlSponge) Reset()                      { c.x.Reset() }

func (c circlSponge) fork() (sponge, error) {
	return circlSponge{x: c.x.Clone()}, nil
}

func (c circlSponge) squeeze(p []byte) {
	_, _ = io.ReadFull(c.x, p) // circl XOF reads never fail
}
