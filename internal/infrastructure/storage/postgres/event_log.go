package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"uniboks/internal/core/id"
	"uniboks/internal/domain/analytics"
)

// CompressionAlgo specifies the compression algorithm used for stored
// event metadata.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// EventLog persists analytics events to the analytics_events table.
// Metadata above the threshold is stored zstd-compressed.
type EventLog struct {
	txManager         *TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes
}

var _ analytics.Recorder = (*EventLog)(nil)

// NewEventLog creates the event log service.
func NewEventLog(txManager *TxManager) (*EventLog, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &EventLog{
		txManager:         txManager,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024, // 10KB
	}, nil
}

// Record implements analytics.Recorder.
func (s *EventLog) Record(ctx context.Context, userID, event string, metadata any) error {
	var payload json.RawMessage
	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("marshal event metadata: %w", err)
		}
		payload = data
	}

	var compressed []byte
	algo := CompressionNone
	if len(payload) > s.compressThreshold {
		compressed = s.encoder.EncodeAll(payload, nil)
		payload = nil
		algo = CompressionZstd
	}

	sql := `
		INSERT INTO analytics_events (
			id, user_id, event, metadata, metadata_compressed, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	querier := s.txManager.GetQuerier(ctx)
	_, err := querier.Exec(ctx, sql,
		id.New(), userID, event, payload, compressed, algo, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

// Decompress restores compressed metadata for readers.
func (s *EventLog) Decompress(data []byte, algo CompressionAlgo) (json.RawMessage, error) {
	switch algo {
	case CompressionZstd:
		out, err := s.decoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decode: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}
