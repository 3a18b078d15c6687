package sec

import "golang.org/x/crypto/bcrypt"

// HashPassword generates the bcrypt hash for a password at the default cost.
// It errors if the password is longer than 72 bytes.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// MustHashPassword is like [HashPassword] but panics on error. It is intended
// for static credentials constructed at process start.
func MustHashPassword(password string) []byte {
	hash, err := HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}

// ComparePassword returns an error if the provided password does not resolve
// to the given hash.
func ComparePassword(password string, hash []byte) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(password))
}
