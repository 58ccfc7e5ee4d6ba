package refcode

import (
	"errors"
	"strings"

	"github.com/speps/go-hashids/v2"
)

var ErrInvalid = errors.New("invalid booking reference")

const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Codec turns booking ids into short counter references such as "BK-7QX2MZ".
type Codec struct {
	h *hashids.HashID
}

func New(salt string) (*Codec, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 6
	hd.Alphabet = alphabet

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Codec{h: h}, nil
}

func (c *Codec) Encode(bookingID int64) (string, error) {
	s, err := c.h.EncodeInt64([]int64{bookingID})
	if err != nil {
		return "", err
	}
	return "BK-" + s, nil
}

func (c *Codec) Decode(ref string) (int64, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	ref = strings.TrimPrefix(ref, "BK-")
	if ref == "" {
		return 0, ErrInvalid
	}

	ids, err := c.h.DecodeInt64WithError(ref)
	if err != nil || len(ids) != 1 {
		return 0, ErrInvalid
	}
	return ids[0], nil
}
