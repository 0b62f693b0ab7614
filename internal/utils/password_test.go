package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("format de hash inattendu: %s", hash)
	}

	ok, err := VerifyPassword("s3cret!", hash)
	if err != nil || !ok {
		t.Fatalf("VerifyPassword(bon mot de passe) = %v, %v", ok, err)
	}

	ok, err = VerifyPassword("mauvais", hash)
	if err != nil {
		t.Fatalf("VerifyPassword(mauvais mot de passe): %v", err)
	}
	if ok {
		t.Fatal("un mauvais mot de passe ne doit pas être accepté")
	}
}

func TestVerifyPasswordBcryptFallback(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("ancien"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	ok, err := VerifyPassword("ancien", string(hash))
	if err != nil || !ok {
		t.Fatalf("le hash bcrypt d'un ancien compte doit rester vérifiable: %v, %v", ok, err)
	}

	ok, _ = VerifyPassword("autre", string(hash))
	if ok {
		t.Fatal("mauvais mot de passe accepté sur hash bcrypt")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("x", "pas-un-hash"); err == nil {
		t.Fatal("un hash mal formé doit retourner une erreur")
	}
}
