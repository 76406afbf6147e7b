package booking

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
)

const (
	codeMin = 1000
	codeMax = 9999
)

var ErrInvalidCode = errors.New("code must be a 4-digit number")

// Code is a short human-enterable entry/exit code for staffed lots.
// Uniqueness against currently unredeemed codes is enforced at generation
// time by the booking use case, which regenerates on collision.
type Code struct {
	value int
}

func NewCode(value int) (Code, error) {
	if value < codeMin || value > codeMax {
		return Code{}, ErrInvalidCode
	}
	return Code{value: value}, nil
}

func (c Code) Value() int {
	return c.value
}

func (c Code) String() string {
	return strconv.Itoa(c.value)
}

// GenerateCode draws a uniformly random 4-digit code.
func GenerateCode() (Code, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return Code{}, err
	}
	return Code{value: codeMin + int(n.Int64())}, nil
}
