package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_codec_mock.go -package=mock

// CredentialCodec turns user passwords into opaque stored values and back.
//
// Encrypt is non-deterministic: the same plaintext yields a different
// ciphertext on every call. Decrypt must restore the exact plaintext given
// to Encrypt, so login can compare it with the attempted password.
type CredentialCodec interface {
	// Encrypt returns a base64-encoded blob (nonce || ciphertext) safe to
	// store in the users table.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. It returns ErrMalformedCiphertext when the
	// input is not a blob produced by Encrypt and ErrDecryptionFailed when
	// authentication fails (e.g. the blob was produced with another secret).
	Decrypt(ciphertext string) (string, error)
}
