package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt digest. Each call salts fresh, so
// the same plaintext never hashes identically twice.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash. A
// malformed hash compares false rather than erroring out to the caller.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
