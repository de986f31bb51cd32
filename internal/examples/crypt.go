package examples

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Encrypted example files are AES-256-CBC, stored as
// "hex(iv):hex(ciphertext)" with PKCS#7 padding. The key is base64.

func decodeKey(key string) ([]byte, error) {
	k, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("key not base64: %w", err)
	}
	if len(k) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes, got %d", len(k))
	}
	return k, nil
}

func decrypt(raw, key []byte) ([]byte, error) {
	parts := bytes.SplitN(raw, []byte(":"), 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed payload: missing iv separator")
	}
	iv, err := hex.DecodeString(string(parts[0]))
	if err != nil {
		return nil, fmt.Errorf("malformed iv: %w", err)
	}
	ct, err := hex.DecodeString(string(parts[1]))
	if err != nil {
		return nil, fmt.Errorf("malformed ciphertext: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != block.BlockSize() {
		return nil, fmt.Errorf("iv must be %d bytes, got %d", block.BlockSize(), len(iv))
	}
	if len(ct) == 0 || len(ct)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("ciphertext not block-aligned")
	}
	out := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ct)
	return stripPadding(out, block.BlockSize())
}

func stripPadding(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, fmt.Errorf("bad padding")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fmt.Errorf("bad padding")
		}
	}
	return b[:len(b)-n], nil
}
