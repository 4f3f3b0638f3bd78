// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package rsa

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/holiman/uint256"

	"github.com/Poizon7/spectrum/internal/arith"
	"github.com/Poizon7/spectrum/internal/crypto"
)

// PublicExponent is the fixed encryption exponent e.
const PublicExponent = 65537

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrEqualPrimes indicates p == q.
	ErrEqualPrimes = errors.New("rsa: primes must be distinct")
	// ErrNoInverse indicates gcd(e, λ) != 1, so no private exponent exists.
	ErrNoInverse = errors.New("rsa: public exponent is not invertible modulo λ")
)

// =============================================================================
// PRIME POOL
// =============================================================================

// primePool is deliberately tiny. It makes key generation trivial and the
// keys worthless against anyone who reads this file.
var primePool = [...]*uint256.Int{
	uint256.MustFromDecimal("834546085180674575058629332681"),
	uint256.MustFromDecimal("107338188804765057603465338413"),
}

// PrimePool returns copies of the primes GenerateKey chooses from.
func PrimePool() []*uint256.Int {
	out := make([]*uint256.Int, len(primePool))
	for i, p := range primePool {
		out[i] = p.Clone()
	}
	return out
}

// =============================================================================
// KEY PAIR
// =============================================================================

// KeyPair is an RSA key: modulus N, public exponent E and private exponent D.
// It is never modified after construction.
type KeyPair struct {
	N uint256.Int
	E uint256.Int
	D uint256.Int
}

// GenerateKey picks two distinct primes from the pool using bytes from random
// and derives a key pair with e = 65537.
func GenerateKey(random io.Reader) (*KeyPair, error) {
	var pick [2]byte
	if _, err := io.ReadFull(random, pick[:]); err != nil {
		return nil, fmt.Errorf("rsa: failed to read randomness: %w", err)
	}

	n := len(primePool)
	pi := int(pick[0]) % n
	qi := (pi + 1 + int(pick[1])%(n-1)) % n

	return NewKeyPair(primePool[pi], primePool[qi])
}

// NewKeyPair derives (n, e, d) from primes p and q:
// n = p·q, λ = (p-1)(q-1), d = e⁻¹ mod λ via the extended Euclidean
// algorithm. Primality of p and q is not checked.
func NewKeyPair(p, q *uint256.Int) (*KeyPair, error) {
	two := uint256.NewInt(2)
	if p.Lt(two) || q.Lt(two) {
		return nil, fmt.Errorf("%w: primes must be at least 2", crypto.ErrArithmeticOverflow)
	}
	if p.Eq(q) {
		return nil, ErrEqualPrimes
	}

	n, err := arith.MulChecked(p, q)
	if err != nil {
		return nil, fmt.Errorf("%w: modulus p·q: %w", crypto.ErrArithmeticOverflow, err)
	}

	one := uint256.NewInt(1)
	pm1 := new(uint256.Int).Sub(p, one)
	qm1 := new(uint256.Int).Sub(q, one)
	lambda, err := arith.MulChecked(pm1, qm1)
	if err != nil {
		return nil, fmt.Errorf("%w: λ: %w", crypto.ErrArithmeticOverflow, err)
	}

	e := uint256.NewInt(PublicExponent)
	g, x, _, err := arith.ExtendedGCD(e, lambda)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrArithmeticOverflow, err)
	}
	if !g.Eq(one) {
		return nil, ErrNoInverse
	}

	// The recurrence yields a negative x when e < λ; λ + x is then the
	// representative in [0, λ).
	d := x
	if x.Sign() < 0 {
		d = new(uint256.Int).Add(lambda, x)
	}

	return &KeyPair{N: *n, E: *e, D: *d}, nil
}

// Validate checks that N is non-zero and E, D are below N.
func (kp *KeyPair) Validate() error {
	if kp.N.IsZero() {
		return fmt.Errorf("%w: modulus is zero", crypto.ErrArithmeticOverflow)
	}
	if !kp.E.Lt(&kp.N) || !kp.D.Lt(&kp.N) {
		return fmt.Errorf("%w: exponent not below modulus", crypto.ErrArithmeticOverflow)
	}
	return nil
}

// String renders the public part only.
func (kp *KeyPair) String() string {
	return fmt.Sprintf("RSA(n=%s, e=%s)", kp.N.Dec(), kp.E.Dec())
}

// =============================================================================
// ENCRYPT / DECRYPT
// =============================================================================

// Encrypt returns m^e mod n. m must be below n.
func Encrypt(m, e, n *uint256.Int) (*uint256.Int, error) {
	return modExp(m, e, n)
}

// Decrypt returns c^d mod n. c must be below n.
func Decrypt(c, d, n *uint256.Int) (*uint256.Int, error) {
	return modExp(c, d, n)
}

func modExp(v, exp, n *uint256.Int) (*uint256.Int, error) {
	if n.IsZero() {
		return nil, fmt.Errorf("%w: %w", crypto.ErrArithmeticOverflow, arith.ErrZeroModulus)
	}
	if !v.Lt(n) {
		return nil, fmt.Errorf("%w: value %s is not below modulus", crypto.ErrArithmeticOverflow, v.Dec())
	}
	return arith.ModExp(v, exp, n)
}

// EncryptSymbol encrypts one byte with the public key.
func (kp *KeyPair) EncryptSymbol(b byte) (*uint256.Int, error) {
	return Encrypt(uint256.NewInt(uint64(b)), &kp.E, &kp.N)
}

// DecryptSymbol decrypts one symbol with the private key. A result that does
// not fit in a byte fails with crypto.ErrDecode.
func (kp *KeyPair) DecryptSymbol(c *uint256.Int) (byte, error) {
	m, err := Decrypt(c, &kp.D, &kp.N)
	if err != nil {
		return 0, err
	}
	if !m.IsUint64() || m.Uint64() > 0xff {
		return 0, fmt.Errorf("%w: decrypted symbol %s exceeds a byte", crypto.ErrDecode, m.Dec())
	}
	return byte(m.Uint64()), nil
}

// EncryptBytes encrypts msg one symbol at a time.
func (kp *KeyPair) EncryptBytes(msg []byte) ([]*uint256.Int, error) {
	out := make([]*uint256.Int, len(msg))
	for i, b := range msg {
		c, err := kp.EncryptSymbol(b)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		out[i] = c
	}
	return out, nil
}

// DecryptBytes decrypts symbols produced by EncryptBytes.
func (kp *KeyPair) DecryptBytes(symbols []*uint256.Int) ([]byte, error) {
	out := make([]byte, len(symbols))
	for i, c := range symbols {
		b, err := kp.DecryptSymbol(c)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}

// =============================================================================
// DECIMAL ENCODING
// =============================================================================

// ParseInt parses a base-10 value in the 256-bit domain. Non-digits fail with
// crypto.ErrDecode; values of 2^256 or more with crypto.ErrArithmeticOverflow.
func ParseInt(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty integer", crypto.ErrDecode)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: invalid digit %q in %q", crypto.ErrDecode, r, s)
		}
	}
	z, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s exceeds 256 bits", crypto.ErrArithmeticOverflow, s)
	}
	return z, nil
}

// FormatSymbols renders symbols as comma-separated decimals.
func FormatSymbols(symbols []*uint256.Int) string {
	parts := make([]string, len(symbols))
	for i, c := range symbols {
		parts[i] = c.Dec()
	}
	return strings.Join(parts, ",")
}

// ParseSymbols parses the output of FormatSymbols.
func ParseSymbols(s string) ([]*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []*uint256.Int{}, nil
	}
	fields := strings.Split(s, ",")
	out := make([]*uint256.Int, len(fields))
	for i, f := range fields {
		z, err := ParseInt(f)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		out[i] = z
	}
	return out, nil
}
