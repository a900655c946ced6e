package hash

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for new digests.
var Cost = bcrypt.DefaultCost

var (
	decoyOnce sync.Once
	decoy     []byte
)

// HashPassword returns a salted bcrypt digest; two calls on the same input differ.
func HashPassword(password string) (string, error) {
	hashbytes, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}

	return string(hashbytes), nil
}

// CheckPassword reports whether password matches hash. A malformed hash is a mismatch.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Burn spends the same work as a real comparison and always reports a mismatch.
// Login uses it when no account matched so both failure paths cost alike.
func Burn(password string) bool {
	decoyOnce.Do(func() {
		decoy, _ = bcrypt.GenerateFromPassword([]byte("decoy-password"), Cost)
	})
	_ = bcrypt.CompareHashAndPassword(decoy, []byte(password))
	return false
}
