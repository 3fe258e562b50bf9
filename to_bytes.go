package bitaddr

import "unsafe"

// toBytes returns a read-only view of data. Digests never write to their
// input.
func toBytes(data string) []byte {
	if data == "" {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(data), len(data))
}
