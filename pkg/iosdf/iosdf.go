// Package iosdf implements the output SDF binary format named in
// spec.md §6: a 36-byte header followed by nx*ny*nz float32 values in
// i-fastest order. Like pkg/ioobj and pkg/iostl, this is an external
// collaborator of the core grid/sdf packages.
package iosdf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// headerBytes is the fixed header size named in spec.md §6.
const headerBytes = 36

// Header describes the grid shape and world placement stored alongside phi.
type Header struct {
	Nx, Ny, Nz int32
	Ox, Oy, Oz float32 // world origin of voxel (0,0,0)'s corner, not center
	Dx         float32
}

// Write emits the spec.md §6 binary layout: three int32 dimensions, three
// float32 origin components, one float32 cell size, 8 reserved zero bytes,
// then nx*ny*nz little-endian float32 phi values in i-fastest order.
func Write(w io.Writer, hdr Header, phi []float32) error {
	expected := int(hdr.Nx) * int(hdr.Ny) * int(hdr.Nz)
	if len(phi) != expected {
		return fmt.Errorf("iosdf: phi has %d values, header implies %d", len(phi), expected)
	}

	bw := bufio.NewWriter(w)
	fields := []interface{}{hdr.Nx, hdr.Ny, hdr.Nz, hdr.Ox, hdr.Oy, hdr.Oz, hdr.Dx}
	for _, f := range fields {
		if err := binary.Write(bw, binary.LittleEndian, f); err != nil {
			return fmt.Errorf("iosdf: writing header: %w", err)
		}
	}
	// bytes 28-35: reserved, written as zero.
	if _, err := bw.Write(make([]byte, 8)); err != nil {
		return fmt.Errorf("iosdf: writing reserved bytes: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, phi); err != nil {
		return fmt.Errorf("iosdf: writing phi payload: %w", err)
	}
	return bw.Flush()
}

// Read parses the spec.md §6 binary layout back into a Header and a phi
// slice. Writing and re-reading yields bit-identical float32 values and
// identical (nx, ny, nz, origin, dx), per spec.md §8.
func Read(r io.Reader) (Header, []float32, error) {
	var hdr Header
	fields := []interface{}{&hdr.Nx, &hdr.Ny, &hdr.Nz, &hdr.Ox, &hdr.Oy, &hdr.Oz, &hdr.Dx}
	for _, f := range fields {
		if err := binary.Read(r, binary.LittleEndian, f); err != nil {
			return Header{}, nil, fmt.Errorf("iosdf: reading header: %w", err)
		}
	}
	reserved := make([]byte, headerBytes-28)
	if _, err := io.ReadFull(r, reserved); err != nil {
		return Header{}, nil, fmt.Errorf("iosdf: reading reserved bytes: %w", err)
	}

	count := int(hdr.Nx) * int(hdr.Ny) * int(hdr.Nz)
	if count < 0 {
		return Header{}, nil, fmt.Errorf("iosdf: invalid dimensions %d x %d x %d", hdr.Nx, hdr.Ny, hdr.Nz)
	}
	phi := make([]float32, count)
	if err := binary.Read(r, binary.LittleEndian, phi); err != nil {
		return Header{}, nil, fmt.Errorf("iosdf: reading phi payload: %w", err)
	}
	return hdr, phi, nil
}
