package auth

import "golang.org/x/crypto/bcrypt"

// Cost 10 matches the hashes already stored by the previous deployment, so
// existing accounts keep verifying.
const bcryptCost = 10

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
