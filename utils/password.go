package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword derives an argon2id hash with the library defaults. The
// returned string embeds the salt and parameters, so it is the only thing
// that needs storing.
func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks a candidate password against a stored encoded hash.
// A mismatch is (false, nil); an error means the hash could not be parsed.
func VerifyPassword(encodedHash, password string) (bool, error) {
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	if err != nil {
		return false, err
	}
	return ok, nil
}
