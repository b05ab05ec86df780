// Package quillsign implements a self-contained RSA file-signing scheme:
// a from-scratch SHA3-256 sponge hash, Miller-Rabin prime generation, RSA
// key pairs with a fixed public exponent of 65537, and OAEP encoding of the
// content digest raised to the private exponent.
//
// Basic usage:
//
//	kp, err := quillsign.GenerateKeyPair(quillsign.DefaultKeyBits)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := quillsign.Sign(content, &kp.Private)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := quillsign.Verify(content, sig, &kp.Public)
//
// # Signature construction
//
// A signature is produced by hashing the content with SHA3-256, encoding the
// 32-byte digest with OAEP (empty label, MGF1 over the same hash), and
// raising the encoded block to the private exponent modulo n. Verification
// reverses the exponentiation with the public exponent, strips the OAEP
// structure, and compares the recovered digest against a fresh hash of the
// content.
//
// This construction is kept byte-compatible with the scheme it
// interoperates with. It is NOT RSASSA-PSS or PKCS#1 v1.5; treat it as a
// fixed wire format, not as a general-purpose signature algorithm.
//
// # Randomness
//
// Every operation that consumes entropy accepts an explicit source through
// [WithRand]. The default source serves crypto/rand bytes and degrades to a
// time-seeded stream only if the secure source fails. Fixed-seed readers
// make key generation and signing fully reproducible, which is intended for
// tests.
//
// # Key and envelope formats
//
// Key files are two lines of base-16 text: the modulus, then the exponent.
// Signed files carry the original content and the signature as padded
// base64 between literal delimiter lines; see [WriteEnvelope].
//
// # Security notes
//
// The OAEP decode path compares secret-derived bytes with variable-time
// operations, matching the original scheme. Callers who need side-channel
// hardening should not use this package as-is.
package quillsign
