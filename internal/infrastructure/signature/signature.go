package signature

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
)

// Hash computes the keyed digest used by query-string style gateways: field
// values concatenated in caller order with no delimiter, the secret appended,
// md5, lowercase hex.
//
// The computation is pure and order-sensitive; both ends of the protocol must
// agree on field order out-of-band.
func Hash(secret string, fields ...string) string {
	h := md5.New()
	for _, f := range fields {
		h.Write([]byte(f))
	}
	h.Write([]byte(secret))
	return hex.EncodeToString(h.Sum(nil))
}

// BasicToken encodes login:password into the reusable credential carried in
// Authorization headers. Inbound webhook auth is verified by exact comparison
// against this token.
func BasicToken(login, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(login + ":" + password))
}

// BasicAuthHeader returns the full Authorization header value.
func BasicAuthHeader(login, password string) string {
	return "Basic " + BasicToken(login, password)
}
