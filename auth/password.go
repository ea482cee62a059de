package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way hash. bcrypt generates a fresh salt
// on every call, so rehashing the same password never repeats a digest.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a plaintext candidate against a stored hash.
func CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
