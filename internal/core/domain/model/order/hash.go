package order

import (
	"crypto/md5" //nolint:gosec // the hash is an opaque public reference, not a security boundary
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

const hashLength = 32

// Hash is the unique public reference of an order (32 lowercase hex characters).
type Hash string

// NewHash derives a fresh hash from a random uuid and the current time.
func NewHash() Hash {
	id := uuid.New()
	buf := make([]byte, 0, len(id)+8)
	buf = append(buf, id[:]...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(time.Now().UnixNano()))
	sum := md5.Sum(buf) //nolint:gosec // see import comment
	return Hash(hex.EncodeToString(sum[:]))
}

// ParseHash validates a stored or transported hash.
func ParseHash(raw string) (Hash, error) {
	h := Hash(raw)
	if err := h.Validate(); err != nil {
		return "", err
	}
	return h, nil
}

func (h Hash) Validate() error {
	if len(h) != hashLength {
		return errs.NewValueIsInvalidErrorWithCause("hash", fmt.Errorf("length %d, want %d", len(h), hashLength))
	}
	if _, err := hex.DecodeString(string(h)); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("hash", err)
	}
	return nil
}

func (h Hash) String() string {
	return string(h)
}
