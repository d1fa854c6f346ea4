// Package quic carries newline-delimited JSON envelopes over a single
// bidirectional QUIC stream.
package quic

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"io"
	"math/big"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/quic-go/quic-go"
)

// NextProto is the ALPN protocol id spoken by bots and arenas.
const NextProto = "arenabot"

var ErrClosed = errors.New("quic: connection closed")

// Conn wraps one stream of a QUIC connection.
type Conn struct {
	conn   *quic.Conn
	stream *quic.Stream
	dec    *json.Decoder
	closed atomic.Bool

	writeMu sync.Mutex
	enc     *json.Encoder
}

func newConn(conn *quic.Conn, stream *quic.Stream) *Conn {
	return &Conn{
		conn:   conn,
		stream: stream,
		dec:    json.NewDecoder(stream),
		enc:    json.NewEncoder(stream),
	}
}

// Dial connects to addr and opens the request stream. The arena uses a
// self-signed certificate so verification is skipped.
func Dial(ctx context.Context, addr string) (*Conn, error) {
	tlsConf := &tls.Config{
		InsecureSkipVerify: true,
		NextProtos:         []string{NextProto},
		MinVersion:         tls.VersionTLS13,
	}
	conn, err := quic.DialAddr(ctx, addr, tlsConf, &quic.Config{KeepAlivePeriod: 10 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", addr)
	}
	stream, err := conn.OpenStreamSync(ctx)
	if err != nil {
		_ = conn.CloseWithError(0, "open stream failed")
		return nil, errors.Wrap(err, "open stream")
	}
	return newConn(conn, stream), nil
}

// Accept waits for the client to open its request stream. Streams are only
// announced once the client writes, so this returns after the first request.
func Accept(ctx context.Context, conn *quic.Conn) (*Conn, error) {
	stream, err := conn.AcceptStream(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "accept stream")
	}
	return newConn(conn, stream), nil
}

// Listen starts a QUIC listener with a fresh self-signed certificate.
func Listen(addr string) (*quic.Listener, error) {
	tlsConf, err := ServerTLSConfig()
	if err != nil {
		return nil, err
	}
	ln, err := quic.ListenAddr(addr, tlsConf, &quic.Config{MaxIdleTimeout: 30 * time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "listen %s", addr)
	}
	return ln, nil
}

func (c *Conn) WriteJSON(v any) error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.enc.Encode(v); err != nil {
		return errors.Wrap(err, "write json")
	}
	return nil
}

func (c *Conn) ReadJSON(v any) error {
	if err := c.dec.Decode(v); err != nil {
		if c.closed.Load() {
			return ErrClosed
		}
		return errors.Wrap(err, "read json")
	}
	return nil
}

func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	_ = c.stream.Close()
	return c.conn.CloseWithError(0, "bye")
}

func (c *Conn) RemoteAddr() net.Addr { return c.conn.RemoteAddr() }

// IsNormalClose reports whether err is the peer hanging up cleanly.
func IsNormalClose(err error) bool {
	if errors.Is(err, ErrClosed) || errors.Is(err, io.EOF) {
		return true
	}
	var appErr *quic.ApplicationError
	if errors.As(err, &appErr) {
		return appErr.ErrorCode == 0
	}
	return false
}

// ServerTLSConfig creates an in-memory self-signed certificate for the arena.
func ServerTLSConfig() (*tls.Config, error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, errors.Wrap(err, "generate key")
	}
	template := x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{Organization: []string{"arenabot"}},
		NotBefore:             time.Now(),
		NotAfter:              time.Now().Add(365 * 24 * time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		IPAddresses:           []net.IP{net.IPv4(127, 0, 0, 1), net.IPv6loopback},
		DNSNames:              []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		return nil, errors.Wrap(err, "create certificate")
	}
	keyPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, errors.Wrap(err, "load key pair")
	}
	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		NextProtos:   []string{NextProto},
		MinVersion:   tls.VersionTLS13,
	}, nil
}
