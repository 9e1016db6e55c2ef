// Package wlanmac reads the factory WLAN MAC address from the persist
// partition and accepts it only when its OUI belongs to the vendor.
package wlanmac

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"os"
)

const (
	// DefaultPath is where the factory address is stored.
	DefaultPath = "/persist/mac.wlan.bin"
	// AddrSize is the length of a MAC address in bytes.
	AddrSize = 6
)

// ErrNotFound is returned when no valid address could be read.
var ErrNotFound = errors.New("wlanmac: address not found")

// Resolver reads the address file on every call; nothing is cached.
type Resolver struct {
	Path   string
	logger *slog.Logger
}

// NewResolver creates a Resolver for DefaultPath.
func NewResolver(logger *slog.Logger) *Resolver {
	return &Resolver{Path: DefaultPath, logger: logger}
}

// Resolve returns the stored address when its first three bytes match a
// vendor OUI. Missing files, short files without a matching prefix and
// unknown prefixes all yield ErrNotFound.
func (r *Resolver) Resolve() (net.HardwareAddr, error) {
	var content [AddrSize]byte
	if err := r.read(content[:]); err != nil {
		r.logger.Debug("Cannot read WLAN address file", "path", r.Path, "error", err)
		return nil, ErrNotFound
	}

	if _, ok := Lookup([3]byte{content[0], content[1], content[2]}); !ok {
		return nil, ErrNotFound
	}

	addr := make(net.HardwareAddr, AddrSize)
	copy(addr, content[:])
	r.logger.Info("Found MAC address", "address", addr.String())
	return addr, nil
}

// WLANAddress copies the resolved address into dst, which must hold at
// least AddrSize bytes. dst is untouched on failure.
func (r *Resolver) WLANAddress(dst []byte) error {
	if len(dst) < AddrSize {
		return io.ErrShortBuffer
	}
	addr, err := r.Resolve()
	if err != nil {
		return err
	}
	copy(dst, addr)
	return nil
}

// InitQMI exists for parity with the vendor client lifecycle.
func (r *Resolver) InitQMI() error {
	return nil
}

// Deinit exists for parity with the vendor client lifecycle.
func (r *Resolver) Deinit() {}

// read fills buf with up to len(buf) bytes; the rest stays zero.
func (r *Resolver) read(buf []byte) error {
	f, err := os.Open(r.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return err
	}
	return nil
}
