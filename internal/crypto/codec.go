package crypto

import "encoding/base64"

// EncodeBase64 encodes b with the standard padded alphabet, the same
// encoding browsers produce with btoa.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 is the inverse of [EncodeBase64].
func DecodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
