package service

import "golang.org/x/crypto/bcrypt"

// hashPassword derives a salted bcrypt hash from a plaintext password.
// Hashing happens exactly once per plaintext change; callers must never
// feed an already-hashed value back in.
func hashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// verifyPassword reports whether password matches hash. It never returns
// an error to the caller: a missing hash or a mismatch are both false.
func verifyPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
