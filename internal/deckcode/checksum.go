package deckcode

// checksum is the byte sum of p modulo 256.
func checksum(p []byte) (sum byte) {
	for _, b := range p {
		sum += b
	}
	return
}
