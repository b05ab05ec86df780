package quillsign

import (
	"fmt"
	"math/big"
	"os"
	"strings"
)

// Key files are two lines of base-16 text: the modulus on the first line,
// the exponent (public e or private d) on the second. There is no length
// prefix and no binary framing.

// SaveKeyPair writes both halves of kp in the two-line hex layout. The
// private key file is created with owner-only permissions.
func SaveKeyPair(kp *KeyPair, pubPath, privPath string) error {
	pub := kp.Public.N.Text(16) + "\n" + kp.Public.E.Text(16)
	if err := os.WriteFile(pubPath, []byte(pub), 0o644); err != nil {
		return fmt.Errorf("write public key: %w", err)
	}

	priv := kp.Private.N.Text(16) + "\n" + kp.Private.D.Text(16)
	if err := os.WriteFile(privPath, []byte(priv), 0o600); err != nil {
		return fmt.Errorf("write private key: %w", err)
	}
	return nil
}

// LoadPublicKey reads a public key file. Failures match ErrKeyLoad via
// errors.Is.
func LoadPublicKey(path string) (*PublicKey, error) {
	n, exp, err := loadKeyFile(path)
	if err != nil {
		return nil, err
	}
	return &PublicKey{N: n, E: exp}, nil
}

// LoadPrivateKey reads a private key file. Failures match ErrKeyLoad via
// errors.Is.
func LoadPrivateKey(path string) (*PrivateKey, error) {
	n, exp, err := loadKeyFile(path)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{N: n, D: exp}, nil
}

func loadKeyFile(path string) (n, exp *big.Int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &KeyLoadError{Path: path, Err: err}
	}

	fields := strings.Fields(string(data))
	if len(fields) != 2 {
		return nil, nil, &KeyLoadError{Path: path, Err: fmt.Errorf("want 2 hex values, got %d", len(fields))}
	}

	n, ok := new(big.Int).SetString(fields[0], 16)
	if !ok {
		return nil, nil, &KeyLoadError{Path: path, Err: fmt.Errorf("modulus is not base-16")}
	}
	exp, ok = new(big.Int).SetString(fields[1], 16)
	if !ok {
		return nil, nil, &KeyLoadError{Path: path, Err: fmt.Errorf("exponent is not base-16")}
	}
	return n, exp, nil
}
