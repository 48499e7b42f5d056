package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/pratikshau1/vaultnotes/internal/common"
)

// envelope is the only on-disk/on-wire representation of ciphertext:
// a JSON object with exactly two string fields.
//
//	{ "iv": "<32 lowercase hex chars>", "ciphertext": "<base64>" }
type envelope struct {
	IV         string `json:"iv"`
	Ciphertext string `json:"ciphertext"`
}

// EncryptText encrypts plaintext under a 256-bit key and returns the
// serialized envelope.
//
// A fresh random 16-byte IV is generated on every call, even for identical
// plaintexts under the same key; a reused IV under CBC would leak equality of
// plaintext prefixes. The payload is padded with PKCS#7 and encrypted with
// AES-256-CBC.
//
// This construction is not authenticated: tampering is not detected, and
// decryption failure cannot distinguish a wrong key from corrupted data.
// That trade-off is deliberate for a local-storage confidentiality model.
func EncryptText(plaintext string, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}

	iv := common.GenerateRandByteArray(aes.BlockSize)

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	data, err := json.Marshal(envelope{
		IV:         hex.EncodeToString(iv),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	})
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}
	return string(data), nil
}

// DecryptText parses a serialized envelope and decrypts it under key.
//
// Every failure mode — malformed or legacy envelope JSON, missing fields, bad
// hex/base64, wrong key, padding failure, or plaintext that is not valid
// UTF-8 — collapses into common.ErrDecryptFailed. The causes are
// indistinguishable without a MAC and the caller's correct response is the
// same for all of them: degrade the single item, keep going.
func DecryptText(envelopeJSON string, key []byte) (string, error) {
	var e envelope
	if err := json.Unmarshal([]byte(envelopeJSON), &e); err != nil {
		return "", fmt.Errorf("%w: not an envelope", common.ErrDecryptFailed)
	}
	if e.IV == "" || e.Ciphertext == "" {
		return "", fmt.Errorf("%w: missing iv or ciphertext", common.ErrDecryptFailed)
	}

	iv, err := hex.DecodeString(e.IV)
	if err != nil || len(iv) != aes.BlockSize {
		return "", fmt.Errorf("%w: bad iv", common.ErrDecryptFailed)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(e.Ciphertext)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: bad ciphertext", common.ErrDecryptFailed)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: bad key", common.ErrDecryptFailed)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: padding", common.ErrDecryptFailed)
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: not text", common.ErrDecryptFailed)
	}
	return string(plaintext), nil
}

// EncryptValue serializes v to JSON and encrypts the result via EncryptText.
// Structured values and plain strings go through separate entry points on
// purpose, so the stored form is a caller-visible choice rather than a
// runtime guess on decrypt.
func EncryptValue[T any](v T, key []byte) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}
	return EncryptText(string(data), key)
}

// DecryptValue decrypts an envelope produced by EncryptValue and unmarshals
// the plaintext JSON into T. A plaintext that does not parse as T's JSON maps
// to common.ErrDecryptFailed like any other decryption failure.
func DecryptValue[T any](envelopeJSON string, key []byte) (T, error) {
	var v T
	plaintext, err := DecryptText(envelopeJSON, key)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal([]byte(plaintext), &v); err != nil {
		return v, fmt.Errorf("%w: not a json value", common.ErrDecryptFailed)
	}
	return v, nil
}

// EncryptBytes encrypts an arbitrary binary payload by base64-encoding it
// first, so the envelope plaintext stays valid text. Used for file contents.
func EncryptBytes(data []byte, key []byte) (string, error) {
	return EncryptText(base64.StdEncoding.EncodeToString(data), key)
}

// DecryptBytes reverses EncryptBytes.
func DecryptBytes(envelopeJSON string, key []byte) ([]byte, error) {
	plaintext, err := DecryptText(envelopeJSON, key)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: not base64 payload", common.ErrDecryptFailed)
	}
	return data, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("invalid padding byte %d", n)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}
	return data[:len(data)-n], nil
}
