// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// signatureDelimiter separates a value from its signature. Session tokens
// are hex, so the last delimiter always starts the signature.
const signatureDelimiter = "."

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Parameters:
//
//	data    - string to be hashed
//	hashKey - secret key used for the HMAC operation
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// SignValue returns value followed by "." and its hex HMAC-SHA256 under
// hashKey. It is used for session cookie values.
func SignValue(value, hashKey string) string {
	return value + signatureDelimiter + HashString(value, hashKey)
}

// VerifySignedValue splits a value produced by SignValue and checks its
// signature in constant time. It returns the original value and true only
// when the signature matches.
func VerifySignedValue(signed, hashKey string) (string, bool) {
	i := strings.LastIndex(signed, signatureDelimiter)
	if i <= 0 || i == len(signed)-1 {
		return "", false
	}

	value, signature := signed[:i], signed[i+1:]
	got, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}

	if !hmac.Equal(got, hashString([]byte(value), hashKey)) {
		return "", false
	}
	return value, true
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key. A new HMAC instance is created on each call.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
