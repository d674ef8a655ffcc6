package utils

import "golang.org/x/crypto/bcrypt"

// BootstrapHashCost matches the cost the provisioning script uses for the
// seeded admin account.
const BootstrapHashCost = 12

// HashPassword hashes password using bcrypt
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
