package hash

import "golang.org/x/crypto/bcrypt"

// HashPassword salts and hashes a plaintext password with the default
// bcrypt work factor (10 rounds). The plaintext is never stored.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
