package utils

import "testing"

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	key := DeriveKey("some app secret")

	encoded, err := Encrypt([]byte("page-access-token"), key)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	if encoded == "page-access-token" {
		t.Fatal("ciphertext must not equal plaintext")
	}

	plain, err := Decrypt(encoded, key)
	if err != nil {
		t.Fatalf("decrypt: %v", err)
	}
	if string(plain) != "page-access-token" {
		t.Fatalf("unexpected plaintext %q", plain)
	}
}

func TestDecryptRejectsWrongKey(t *testing.T) {
	t.Parallel()

	encoded, err := Encrypt([]byte("secret value"), DeriveKey("key one"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}

	if _, err := Decrypt(encoded, DeriveKey("key two")); err == nil {
		t.Fatal("expected decryption with the wrong key to fail")
	}
}
