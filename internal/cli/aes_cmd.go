// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// aes_cmd.go - The "aes" command: key generation, encryption, decryption.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/Poizon7/spectrum/internal/crypto"
	"github.com/Poizon7/spectrum/internal/crypto/aes"
	"github.com/Poizon7/spectrum/internal/util"
)

func (a *App) runAES(raw []string) (interface{}, error) {
	p := NewArgParser(raw, "text", "trim", "force")

	switch p.Subcommand() {
	case "keygen", "generate":
		return a.aesKeygen(p)
	case "encrypt", "enc":
		return a.aesEncrypt(p)
	case "decrypt", "dec":
		return a.aesDecrypt(p)
	default:
		return nil, subcommandError("aes", p.Subcommand(), "keygen", "encrypt", "decrypt")
	}
}

// keySize resolves --bits against the configured default.
func (a *App) keySize(p *ArgParser) (aes.KeySize, error) {
	size, err := a.cfg.AESKeySize()
	if err != nil {
		return 0, err
	}
	if !p.HasFlag("bits") {
		return size, nil
	}
	bits, err := p.FlagInt("bits", size.Bits())
	if err != nil {
		return 0, err
	}
	if size, err = aes.KeySizeFromBits(bits); err != nil {
		return 0, NewUsageErrorWithExample("--bits", p.Flag("bits"), "must be 128, 192 or 256", "spectrum aes keygen --bits 256")
	}
	return size, nil
}

func (a *App) aesKeygen(p *ArgParser) (interface{}, error) {
	size, err := a.keySize(p)
	if err != nil {
		return nil, err
	}

	key, err := aes.GenerateKey(size, a.Random)
	if err != nil {
		return nil, NewCommandError("aes", "keygen", err)
	}

	data := AESKeyData{
		KeyID: uuid.NewString(),
		Bits:  size.Bits(),
	}

	out := p.Flag("out")
	if out == "" {
		data.Key = key.Hex()
		a.printf("%s\n", HighlightStyle.Render(key.Hex()))
		return data, nil
	}

	path, err := ValidateOutputPath(out)
	if err != nil {
		return nil, NewUsageError("--out", out, err.Error())
	}
	if _, statErr := os.Stat(path); statErr == nil && !p.BoolFlag("force") {
		return nil, NewUsageError("--out", out, "file exists (use --force to overwrite)")
	}
	if err := util.WriteSecretFile(path, []byte(key.Hex()+"\n")); err != nil {
		return nil, NewCommandError("aes", "keygen", err)
	}

	a.log.Info("wrote key", "key_id", data.KeyID, "bits", data.Bits, "path", path)
	data.Path = path
	a.printf("%s %s key %s written to %s\n", SuccessStyle.Render("[OK]"), size, data.KeyID, path)
	return data, nil
}

// aesCipher builds a cipher from --key or --key-file.
func (a *App) aesCipher(p *ArgParser) (*aes.Cipher, error) {
	keyHex := p.Flag("key")
	if file := p.Flag("key-file"); file != "" {
		if keyHex != "" {
			return nil, NewUsageError("--key", "", "use either --key or --key-file, not both")
		}
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read key file: %w", err)
		}
		keyHex = strings.TrimSpace(string(content))
	}
	if keyHex == "" {
		return nil, NewUsageErrorWithExample("--key", "", "a hex key is required",
			"spectrum aes encrypt --key 000102030405060708090a0b0c0d0e0f 00112233")
	}

	key, err := aes.ParseKey(compactHex(keyHex))
	if err != nil {
		return nil, NewUsageError("--key", "", err.Error())
	}
	a.log.Debug("loaded key", "algorithm", key.Size().String())
	return aes.New(key), nil
}

func (a *App) aesEncrypt(p *ArgParser) (interface{}, error) {
	c, err := a.aesCipher(p)
	if err != nil {
		return nil, err
	}

	input, err := a.readInput(p, 1, "plaintext")
	if err != nil {
		return nil, err
	}

	var (
		ciphertext []byte
		inputBytes int
	)
	if p.BoolFlag("text") {
		inputBytes = len(input)
		ciphertext, err = c.EncryptText(input)
	} else {
		var plaintext []byte
		plaintext, err = crypto.HexToBytes(compactHex(input))
		if err != nil {
			return nil, NewUsageError("plaintext", "", err.Error())
		}
		inputBytes = len(plaintext)
		ciphertext, err = crypto.Encrypt(c, plaintext)
	}
	if err != nil {
		return nil, NewCommandError("aes", "encrypt", err)
	}

	out := crypto.BytesToHex(ciphertext)
	a.printf("%s\n", out)
	return AESResultData{Algorithm: c.Name(), InputBytes: inputBytes, Hex: out}, nil
}

func (a *App) aesDecrypt(p *ArgParser) (interface{}, error) {
	c, err := a.aesCipher(p)
	if err != nil {
		return nil, err
	}

	input, err := a.readInput(p, 1, "ciphertext")
	if err != nil {
		return nil, err
	}
	ciphertext, err := crypto.HexToBytes(compactHex(input))
	if err != nil {
		return nil, NewUsageError("ciphertext", "", err.Error())
	}

	data := AESResultData{Algorithm: c.Name(), InputBytes: len(ciphertext)}

	if p.BoolFlag("text") {
		text, err := c.DecryptText(ciphertext)
		if err != nil {
			return nil, NewCommandError("aes", "decrypt", err)
		}
		data.Text = text
		data.Hex = crypto.BytesToHex([]byte(text))
		a.printf("%s\n", text)
		return data, nil
	}

	plaintext, err := crypto.Decrypt(c, ciphertext)
	if err != nil {
		return nil, NewCommandError("aes", "decrypt", err)
	}
	if p.BoolFlag("trim") {
		plaintext = aes.TrimZeroFill(plaintext)
	}
	data.Hex = crypto.BytesToHex(plaintext)
	a.printf("%s\n", data.Hex)
	return data, nil
}
