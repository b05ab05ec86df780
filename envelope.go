package quillsign

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
)

// Envelope delimiter lines. The byte layout of signed files is fixed;
// changing these breaks verification of existing files.
const (
	beginMessage   = "-----BEGIN SIGNED MESSAGE-----"
	beginSignature = "-----BEGIN SIGNATURE-----"
	endSignature   = "-----END SIGNATURE-----"
)

// maxEnvelopeLine bounds a single envelope line; base64 content is written
// as one line, so this also bounds the signable file size.
const maxEnvelopeLine = 64 * 1024 * 1024

// WriteEnvelope writes the signed-file envelope to w: the base64 of the
// original content and the base64 of the signature bytes, each introduced
// by its literal delimiter line.
func WriteEnvelope(w io.Writer, content, signature []byte) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n%s\n%s\n",
		beginMessage,
		base64.StdEncoding.EncodeToString(content),
		beginSignature,
		base64.StdEncoding.EncodeToString(signature),
		endSignature,
	)
	if err != nil {
		return fmt.Errorf("write envelope: %w", err)
	}
	return nil
}

// ParseEnvelope reads a signed-file envelope and returns the original
// content and signature bytes. Structural failures match
// ErrInvalidEnvelope via errors.Is.
func ParseEnvelope(r io.Reader) (content, signature []byte, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEnvelopeLine)

	var contentB64, sigB64 strings.Builder
	var sawMessage, sawSignature, sawEnd bool
	section := 0

scan:
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, beginMessage):
			sawMessage = true
			section = 1
		case strings.HasPrefix(line, beginSignature):
			sawSignature = true
			section = 2
		case strings.HasPrefix(line, endSignature):
			sawEnd = true
			break scan
		case section == 1:
			contentB64.WriteString(line)
		case section == 2:
			sigB64.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read envelope: %w", err)
	}

	if !sawMessage || !sawSignature {
		return nil, nil, &EnvelopeError{Message: "missing delimiter lines"}
	}
	if !sawEnd {
		return nil, nil, &EnvelopeError{Message: "unterminated signature section"}
	}

	content, err = base64.StdEncoding.DecodeString(contentB64.String())
	if err != nil {
		return nil, nil, &EnvelopeError{Message: fmt.Sprintf("content is not base64: %v", err)}
	}
	signature, err = base64.StdEncoding.DecodeString(sigB64.String())
	if err != nil {
		return nil, nil, &EnvelopeError{Message: fmt.Sprintf("signature is not base64: %v", err)}
	}
	return content, signature, nil
}
