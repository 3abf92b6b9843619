package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
)

// maxFrameLen bounds how much a single length-prefixed read will allocate,
// guarding against a misbehaving peer claiming an absurd frame size.
const maxFrameLen = 1 << 20

// writeFramed writes b to conn prefixed with its 4-byte big-endian length.
// SRD packets carry no outer length prefix of their own (that is the
// transport's job), so the demo supplies one to recover message boundaries
// over net.Pipe's byte-stream semantics.
func writeFramed(conn net.Conn, b []byte) error {
	var prefix [4]byte
	binary.BigEndian.PutUint32(prefix[:], uint32(len(b)))
	if _, err := conn.Write(prefix[:]); err != nil {
		return err
	}
	_, err := conn.Write(b)
	return err
}

// readFramed reads one length-prefixed frame from conn.
func readFramed(conn net.Conn) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(conn, prefix[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(prefix[:])
	if n > maxFrameLen {
		return nil, fmt.Errorf("frame length %d exceeds maximum %d", n, maxFrameLen)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(conn, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
