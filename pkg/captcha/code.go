// code.go — Random captcha code generation.
package captcha

import "math/rand"

// codeAlphabet omits visually ambiguous characters (0/O, 1/I/l).
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// RandomCode returns a code of the given length drawn from an
// ambiguity-free alphabet.
func RandomCode(rng *rand.Rand, length int) string {
	code := make([]byte, length)
	for i := range code {
		code[i] = codeAlphabet[rng.Intn(len(codeAlphabet))]
	}
	return string(code)
}
