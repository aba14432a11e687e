package cursor

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

// Kind tags a cursor variant in its serialized form.
type Kind string

const (
	KindAggregator Kind = "aggregator"
	KindWatermark  Kind = "csv"
)

const (
	keyToken      = "token"
	keyLatestDate = "latest_date"
)

var ErrUnknownKind = errors.New("unknown cursor kind")

// Cursor records how far a source has been synced. A nil Cursor means the
// source has never been synced.
type Cursor interface {
	Kind() Kind
	Data() map[string]string
}

// Aggregator is the opaque continuation token handed out by the aggregation API.
// An empty token means "from the beginning".
type Aggregator struct {
	Token string
}

func (Aggregator) Kind() Kind { return KindAggregator }

func (c Aggregator) Data() map[string]string {
	return map[string]string{keyToken: c.Token}
}

// Watermark is the latest transaction date already ingested from a stateless source.
type Watermark struct {
	LatestDate civil.Date
}

func (Watermark) Kind() Kind { return KindWatermark }

func (c Watermark) Data() map[string]string {
	return map[string]string{keyLatestDate: c.LatestDate.String()}
}

func Serialize(c Cursor) (Kind, map[string]string) {
	return c.Kind(), c.Data()
}

func Deserialize(kind string, data map[string]string) (Cursor, error) {
	switch Kind(kind) {
	case KindAggregator:
		return Aggregator{Token: data[keyToken]}, nil
	case KindWatermark:
		raw, ok := data[keyLatestDate]
		if !ok {
			return nil, fmt.Errorf("watermark cursor: missing %q", keyLatestDate)
		}

		d, err := civil.ParseDate(raw)
		if err != nil {
			return nil, fmt.Errorf("watermark cursor: %w", err)
		}

		return Watermark{LatestDate: d}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}
