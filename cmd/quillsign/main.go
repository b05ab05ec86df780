// Command quillsign generates RSA key pairs and signs, verifies, and
// unpacks signed files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	quillsign "github.com/quillsign/quillsign-go"
)

func main() {
	root := &cobra.Command{
		Use:           "quillsign",
		Short:         "Sign and verify files with RSA-OAEP over SHA3-256",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(keygenCmd(), signCmd(), verifyCmd(), extractCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func keygenCmd() *cobra.Command {
	var bits int
	var pubPath, privPath string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA key pair and write it to key files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("Generating %d-bit RSA key pair...\n", bits)
			kp, err := quillsign.GenerateKeyPair(bits)
			if err != nil {
				return err
			}
			if err := quillsign.SaveKeyPair(kp, pubPath, privPath); err != nil {
				return err
			}
			fmt.Printf("Keys saved to %s and %s\n", pubPath, privPath)
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", quillsign.DefaultKeyBits, "modulus size in bits")
	cmd.Flags().StringVar(&pubPath, "pub", "public_key.txt", "public key output path")
	cmd.Flags().StringVar(&privPath, "priv", "private_key.txt", "private key output path")
	return cmd
}

func signCmd() *cobra.Command {
	var keyPath, outPath string

	cmd := &cobra.Command{
		Use:   "sign <file>",
		Short: "Sign a file and write the signed envelope next to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			key, err := quillsign.LoadPrivateKey(keyPath)
			if err != nil {
				return err
			}

			sig, err := quillsign.Sign(content, key)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = args[0] + ".signed"
			}
			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			if err := quillsign.WriteEnvelope(out, content, sig); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}

			fmt.Printf("Signed file written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "private_key.txt", "private key file")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default: <file>.signed)")
	return cmd
}

func verifyCmd() *cobra.Command {
	var keyPath string

	cmd := &cobra.Command{
		Use:   "verify <signed-file>",
		Short: "Verify the signature inside a signed envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			content, sig, err := quillsign.ParseEnvelope(f)
			if err != nil {
				return err
			}
			key, err := quillsign.LoadPublicKey(keyPath)
			if err != nil {
				return err
			}

			ok, err := quillsign.Verify(content, sig, key)
			switch {
			case errors.Is(err, quillsign.ErrInvalidPadding):
				fmt.Println("Signature INVALID: malformed padding")
			case err != nil:
				return err
			case ok:
				fmt.Println("Signature VALID")
				return nil
			default:
				fmt.Println("Signature INVALID: digest mismatch")
			}
			os.Exit(1)
			return nil
		},
	}
	cmd.Flags().StringVar(&keyPath, "key", "public_key.txt", "public key file")
	return cmd
}

func extractCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "extract <signed-file>",
		Short: "Extract the original content from a signed envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			content, _, err := quillsign.ParseEnvelope(f)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = os.Stdout.Write(content)
				return err
			}
			if err := os.WriteFile(outPath, content, 0o644); err != nil {
				return err
			}
			fmt.Printf("Original content written to %s\n", outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "output path (default: stdout)")
	return cmd
}
