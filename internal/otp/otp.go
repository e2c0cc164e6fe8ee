package otp

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/JMURv/tab-audit/internal/config"
	md "github.com/JMURv/tab-audit/internal/models"
	"github.com/google/uuid"
)

var ErrInvalidLength = errors.New("otp length must be between 4 and 12")

type Port interface {
	Issue(deviceID uuid.UUID, now time.Time) (md.ReturnChallenge, error)
	TTL() time.Duration
}

type Core struct {
	length int
	ttl    time.Duration
	rand   io.Reader
}

func New(conf config.OTPConfig) (*Core, error) {
	if conf.Length < 4 || conf.Length > 12 {
		return nil, ErrInvalidLength
	}

	return &Core{length: conf.Length, ttl: conf.TTL, rand: rand.Reader}, nil
}

func (c *Core) TTL() time.Duration {
	return c.ttl
}

// Issue creates a fresh challenge for the device. Persisting it replaces any
// earlier challenge of the same device.
func (c *Core) Issue(deviceID uuid.UUID, now time.Time) (md.ReturnChallenge, error) {
	code, err := c.Code()
	if err != nil {
		return md.ReturnChallenge{}, err
	}

	return md.ReturnChallenge{
		DeviceID:  deviceID,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}, nil
}

// Code draws each digit uniformly from crypto/rand.
func (c *Core) Code() (string, error) {
	var sb strings.Builder
	sb.Grow(c.length)

	ten := big.NewInt(10)
	for i := 0; i < c.length; i++ {
		n, err := rand.Int(c.rand, ten)
		if err != nil {
			return "", err
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String(), nil
}
