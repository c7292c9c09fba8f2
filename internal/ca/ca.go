// Package ca owns the installation's root signing authority and mints
// short-lived leaf certificates for intercepted hosts.
package ca

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	CertFile = "ca.pem"
	KeyFile  = "ca-key.pem"

	rootKeyBits  = 4096
	rootValidity = 10 * 365 * 24 * time.Hour
	leafValidity = 7 * 24 * time.Hour
	leafBackdate = time.Hour
	leafRenew    = 24 * time.Hour
)

// ErrCorrupt marks an existing authority that cannot be loaded. It is
// distinct from a first run, where both files are absent.
var ErrCorrupt = errors.New("certificate authority is corrupt")

// Authority is a loaded root plus a per-host leaf cache.
type Authority struct {
	cert    *x509.Certificate
	key     crypto.Signer
	certPEM []byte
	dir     string

	// mu guards leaves only; minting runs outside it.
	mu     sync.Mutex
	leaves map[string]*tls.Certificate
	mints  singleflight.Group
	mintFn func(host string, now time.Time) (*tls.Certificate, error)
	now    func() time.Time
}

// Ensure loads the authority from dir, generating and persisting a new one
// when neither file exists.
func Ensure(dir string) (*Authority, error) {
	certPath := filepath.Join(dir, CertFile)
	keyPath := filepath.Join(dir, KeyFile)

	certPEM, certErr := os.ReadFile(certPath)
	keyPEM, keyErr := os.ReadFile(keyPath)
	certMissing := errors.Is(certErr, os.ErrNotExist)
	keyMissing := errors.Is(keyErr, os.ErrNotExist)

	switch {
	case certErr != nil && !certMissing:
		return nil, fmt.Errorf("failed to read %s: %w", certPath, certErr)
	case keyErr != nil && !keyMissing:
		return nil, fmt.Errorf("failed to read %s: %w", keyPath, keyErr)
	case certMissing && keyMissing:
		return generate(dir, certPath, keyPath)
	case certMissing:
		return nil, fmt.Errorf("%s present without %s: %w", KeyFile, CertFile, ErrCorrupt)
	case keyMissing:
		return nil, fmt.Errorf("%s present without %s: %w", CertFile, KeyFile, ErrCorrupt)
	}
	return load(dir, certPEM, keyPEM)
}

func generate(dir, certPath, keyPath string) (*Authority, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create CA dir: %w", err)
	}
	key, err := rsa.GenerateKey(rand.Reader, rootKeyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CA key: %w", err)
	}
	serial, err := randSerial()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	tmpl := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               pkix.Name{CommonName: "Root CA", Organization: []string{"chatwarden"}},
		NotBefore:             now.Add(-leafBackdate),
		NotAfter:              now.Add(rootValidity),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		SignatureAlgorithm:    x509.SHA256WithRSA,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to self-sign CA: %w", err)
	}
	keyDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to encode CA key: %w", err)
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: keyDER})

	// Key first: a crash between the writes leaves a lone key, which
	// Ensure reports as corrupt rather than silently regenerating.
	if err := writeFile(keyPath, keyPEM, 0600); err != nil {
		return nil, err
	}
	if err := writeFile(certPath, certPEM, 0644); err != nil {
		return nil, err
	}
	return load(dir, certPEM, keyPEM)
}

func writeFile(path string, data []byte, perm os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func load(dir string, certPEM, keyPEM []byte) (*Authority, error) {
	cb, _ := pem.Decode(certPEM)
	if cb == nil || cb.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("%s: no certificate block: %w", CertFile, ErrCorrupt)
	}
	cert, err := x509.ParseCertificate(cb.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", CertFile, err, ErrCorrupt)
	}
	if !cert.IsCA {
		return nil, fmt.Errorf("%s: not a CA certificate: %w", CertFile, ErrCorrupt)
	}
	key, err := parseKey(keyPEM)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", KeyFile, err, ErrCorrupt)
	}
	if !publicKeysEqual(cert.PublicKey, key.Public()) {
		return nil, fmt.Errorf("%s does not match %s: %w", KeyFile, CertFile, ErrCorrupt)
	}
	a := &Authority{
		cert:    cert,
		key:     key,
		certPEM: certPEM,
		dir:     dir,
		leaves:  make(map[string]*tls.Certificate),
		now:     time.Now,
	}
	a.mintFn = a.mint
	return a, nil
}

func parseKey(data []byte) (crypto.Signer, error) {
	b, _ := pem.Decode(data)
	if b == nil {
		return nil, errors.New("no PEM block")
	}
	switch b.Type {
	case "PRIVATE KEY":
		k, err := x509.ParsePKCS8PrivateKey(b.Bytes)
		if err != nil {
			return nil, err
		}
		s, ok := k.(crypto.Signer)
		if !ok {
			return nil, fmt.Errorf("unsupported key type %T", k)
		}
		return s, nil
	case "RSA PRIVATE KEY":
		return x509.ParsePKCS1PrivateKey(b.Bytes)
	case "EC PRIVATE KEY":
		return x509.ParseECPrivateKey(b.Bytes)
	}
	return nil, fmt.Errorf("unexpected PEM block %q", b.Type)
}

func publicKeysEqual(a, b crypto.PublicKey) bool {
	type equaler interface{ Equal(crypto.PublicKey) bool }
	e, ok := a.(equaler)
	return ok && e.Equal(b)
}

func randSerial() (*big.Int, error) {
	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("failed to generate serial: %w", err)
	}
	return n, nil
}

// Dir is the directory the authority was loaded from.
func (a *Authority) Dir() string { return a.dir }

// Certificate is the parsed root.
func (a *Authority) Certificate() *x509.Certificate { return a.cert }

// RootPEM returns the root certificate in PEM form.
func (a *Authority) RootPEM() []byte {
	return append([]byte(nil), a.certPEM...)
}

// RootDER returns the root certificate in DER form for trust-store import.
func (a *Authority) RootDER() []byte {
	return append([]byte(nil), a.cert.Raw...)
}

// Fingerprint is the colon-separated SHA-256 of the root DER.
func (a *Authority) Fingerprint() string {
	return Fingerprint(a.cert.Raw)
}

// Fingerprint formats the SHA-256 of der as upper-case hex pairs.
func Fingerprint(der []byte) string {
	sum := sha256.Sum256(der)
	h := strings.ToUpper(hex.EncodeToString(sum[:]))
	parts := make([]string, 0, len(sum))
	for i := 0; i < len(h); i += 2 {
		parts = append(parts, h[i:i+2])
	}
	return strings.Join(parts, ":")
}

// ReadRootDER reads the persisted root from dir without loading the key.
func ReadRootDER(dir string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(dir, CertFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read root certificate: %w", err)
	}
	b, _ := pem.Decode(data)
	if b == nil || b.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("%s: no certificate block: %w", CertFile, ErrCorrupt)
	}
	if _, err := x509.ParseCertificate(b.Bytes); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", CertFile, err, ErrCorrupt)
	}
	return b.Bytes, nil
}

// Present reports whether both authority files still exist in dir.
func Present(dir string) bool {
	for _, f := range []string{CertFile, KeyFile} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			return false
		}
	}
	return true
}

// LeafFor returns a leaf certificate for host, minting one when the cache
// has none or the cached one is within a day of expiry.
func (a *Authority) LeafFor(host string) (*tls.Certificate, error) {
	host = strings.ToLower(strings.TrimSuffix(host, "."))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if host == "" {
		return nil, errors.New("leaf certificate: empty host")
	}

	now := a.now()
	if c := a.cached(host, now); c != nil {
		return c, nil
	}
	v, err, _ := a.mints.Do(host, func() (any, error) {
		if c := a.cached(host, now); c != nil {
			return c, nil
		}
		c, err := a.mintFn(host, now)
		if err != nil {
			return nil, err
		}
		a.mu.Lock()
		a.leaves[host] = c
		a.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*tls.Certificate), nil
}

func (a *Authority) cached(host string, now time.Time) *tls.Certificate {
	a.mu.Lock()
	defer a.mu.Unlock()
	if c, ok := a.leaves[host]; ok && now.Add(leafRenew).Before(c.Leaf.NotAfter) {
		return c
	}
	return nil
}

func (a *Authority) mint(host string, now time.Time) (*tls.Certificate, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate leaf key: %w", err)
	}
	serial, err := randSerial()
	if err != nil {
		return nil, err
	}
	tmpl := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: host, Organization: []string{"chatwarden"}},
		NotBefore:    now.Add(-leafBackdate),
		NotAfter:     now.Add(leafValidity),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	if ip := net.ParseIP(host); ip != nil {
		tmpl.IPAddresses = []net.IP{ip}
	} else {
		tmpl.DNSNames = []string{host}
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, a.cert, &key.PublicKey, a.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign leaf for %s: %w", host, err)
	}
	leaf, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse leaf for %s: %w", host, err)
	}
	return &tls.Certificate{
		Certificate: [][]byte{der, a.cert.Raw},
		PrivateKey:  key,
		Leaf:        leaf,
	}, nil
}

// TLSConfig serves leaves chosen by SNI, or by fallbackHost when the client
// sends none.
func (a *Authority) TLSConfig(fallbackHost string) *tls.Config {
	return &tls.Config{
		MinVersion: tls.VersionTLS12,
		NextProtos: []string{"http/1.1"},
		GetCertificate: func(hello *tls.ClientHelloInfo) (*tls.Certificate, error) {
			host := hello.ServerName
			if host == "" {
				host = fallbackHost
			}
			return a.LeafFor(host)
		},
	}
}

// CertPool returns a pool trusting only this root. Used by tests and by
// local health checks.
func (a *Authority) CertPool() *x509.CertPool {
	p := x509.NewCertPool()
	p.AddCert(a.cert)
	return p
}
