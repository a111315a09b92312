package security

// Alphabet without easily confused glyphs (0/O, 1/l/I) since temporary
// passwords are relayed to people verbally or in writing.
const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// GenerateTemporaryPassword returns a random one-time credential of at least
// eight characters.
func GenerateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	return RandomString(length, temporaryPasswordAlphabet)
}
