// Package hashing provides MD5 checksum calculation utilities.
//
// This package implements a transparent proxy for calculating MD5 checksums
// of data streams plus a helper for in-memory buffers. It's primarily used
// for detecting whether the published wpa_supplicant configuration is stale
// compared to the fragments it was assembled from, so that status checks can
// report drift without re-parsing the whole document.
//
// # Components
//
//   - ChecksumReaderProxy: Calculates MD5 while reading from an io.Reader
//   - ChecksumBytes: Calculates MD5 of an already-assembled byte slice
//   - ChecksumProvider: Interface for types that provide checksums
//
// # Example Usage
//
// Calculating checksum while reading a published configuration file:
//
//	f, _ := os.Open("/opt/etc/wpa_supplicant.conf")
//	defer f.Close()
//
//	proxy := hashing.NewMD5ReaderProxy(f)
//	content, _ := io.ReadAll(proxy)
//
//	checksum, _ := proxy.GetChecksum()
//	fmt.Printf("Read %d bytes, MD5: %s\n", len(content), checksum)
//
// Hashing an assembled document before publishing:
//
//	doc := assembler.Assemble(fragments)
//	fmt.Printf("Assembled document MD5: %s\n", hashing.ChecksumBytes(doc))
//
// The proxy pattern allows checksum calculation without changing existing
// code that works with io.Reader interfaces. The checksum is computed
// incrementally as data is read, making it memory-efficient for large streams.
package hashing
