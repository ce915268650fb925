package cache

import (
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/cvr"
	"github.com/fxamacker/cbor/v2"
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	// core deterministic encoding sorts map keys, so equal CVRs encode to
	// equal bytes
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("cache: building CBOR encoder: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("cache: building CBOR decoder: " + err.Error())
	}
}

func encodeCVR(c cvr.CVR) ([]byte, error) {
	payload, err := encMode.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingCVR, err)
	}
	return payload, nil
}

func decodeCVR(payload []byte) (cvr.CVR, error) {
	var c cvr.CVR
	if err := decMode.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingCVR, err)
	}

	// collections absent from the payload read as empty maps
	out := cvr.Empty()
	for name, m := range c {
		if m != nil {
			out[name] = m
		}
	}
	return out, nil
}
