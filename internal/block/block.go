// Package block chunks a byte stream into fixed-size pieces for
// per-block encryption. It knows nothing about packing or early
// termination on an embedded zero byte — that belongs to the plaintext
// packer, which may legitimately see a full, non-truncated block.
package block

import "io"

// Size returns the byte width of one plaintext block for a key of the
// given bit size: bits/16, so that a fully-packed block's numeric value
// always has room below the modulus with margin to spare.
func Size(bits int) int {
	return bits / 16
}

// Read fills a buffer of the given size from r, returning the bytes
// actually read (which may be fewer than size on the final, partial
// block) and the count. It reports io.EOF only when zero bytes were
// read; a short final read returns its bytes with a nil error, and the
// next call then returns io.EOF.
func Read(r io.Reader, size int) ([]byte, int, error) {
	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return buf, n, nil
	case err == io.ErrUnexpectedEOF:
		return buf[:n], n, nil
	case err == io.EOF:
		return nil, 0, io.EOF
	default:
		return nil, n, err
	}
}
