package daraja

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"os"
)

// SecurityCredential produces the signing material initiator-credentialed
// APIs require: the initiator password RSA-encrypted with the gateway
// certificate's public key. Without a real certificate configured this fails
// outright; a fabricated credential would be rejected upstream anyway.
func (client *DarajaClient) SecurityCredential() (string, error) {
	if client.Config.CertPath == "" || client.Config.InitiatorPassword == "" {
		return "", ErrMissingCert
	}
	return GenerateSecurityCredential(client.Config.CertPath, client.Config.InitiatorPassword)
}

func GenerateSecurityCredential(certPath string, initiatorPassword string) (string, error) {
	certData, err := os.ReadFile(certPath)
	if err != nil {
		return "", fmt.Errorf("failed to read certificate: %w", err)
	}

	block, _ := pem.Decode(certData)
	if block == nil {
		return "", fmt.Errorf("failed to decode PEM block in %s", certPath)
	}

	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return "", fmt.Errorf("failed to parse certificate: %w", err)
	}

	publicKey, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return "", fmt.Errorf("certificate does not carry an RSA public key")
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, []byte(initiatorPassword))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt initiator password: %w", err)
	}

	return base64.StdEncoding.EncodeToString(encrypted), nil
}
