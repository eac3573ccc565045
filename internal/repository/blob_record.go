package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftlog/internal/domain"
	"github.com/alexanderramin/shiftlog/internal/kvstore"
)

// BlobKey is the fixed key holding the whole record collection.
const BlobKey = "shiftlog.records"

// BlobRecordStore is the fallback RecordStore. The full collection lives
// as one JSON array under BlobKey; every Save and Delete reads it, changes
// it in memory and writes it back.
//
// Ids derive from the creation time in milliseconds, bumped past the
// largest id already stored. Two processes writing in the same millisecond
// can still collide; only one session is expected to write at a time.
type BlobRecordStore struct {
	kv    kvstore.KeyValue
	clock domain.Clock
}

func NewBlobRecordStore(kv kvstore.KeyValue, clock domain.Clock) *BlobRecordStore {
	return &BlobRecordStore{kv: kv, clock: clockOrSystem(clock)}
}

// blobRecord is the on-disk shape of a record. Total is written for
// readers of the raw file and ignored when decoding.
type blobRecord struct {
	ID        int64  `json:"id"`
	Barcode   string `json:"barcode"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Shift     string `json:"shift"`
	CountT1   int    `json:"t1"`
	CountT2   int    `json:"t2"`
	Total     int    `json:"total"`
	CreatedAt string `json:"createdAt"`
}

// EncodeBlob serializes records into the flat-blob format.
func EncodeBlob(records []*domain.WorkRecord) (string, error) {
	out := make([]blobRecord, 0, len(records))
	for _, r := range records {
		out = append(out, blobRecord{
			ID:        r.ID,
			Barcode:   r.Barcode,
			Date:      r.Date,
			Time:      r.Time,
			Shift:     string(r.Shift),
			CountT1:   r.CountT1,
			CountT2:   r.CountT2,
			Total:     r.Total(),
			CreatedAt: formatCreatedAt(r.CreatedAt),
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encoding record blob: %w", err)
	}
	return string(data), nil
}

// DecodeBlob parses the flat-blob format. An empty string is an empty
// collection. Entries without a barcode, date or shift are rejected.
func DecodeBlob(blob string) ([]*domain.WorkRecord, error) {
	if blob == "" {
		return nil, nil
	}
	var raw []blobRecord
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("decoding record blob: %w", err)
	}
	records := make([]*domain.WorkRecord, 0, len(raw))
	for i, b := range raw {
		if missing := b.missingFields(); len(missing) > 0 {
			return nil, fmt.Errorf("decoding record blob: entry %d: missing %s", i, strings.Join(missing, ", "))
		}
		r := &domain.WorkRecord{
			ID:      b.ID,
			Barcode: b.Barcode,
			Date:    b.Date,
			Time:    b.Time,
			Shift:   domain.Shift(b.Shift),
			CountT1: b.CountT1,
			CountT2: b.CountT2,
		}
		if b.CreatedAt != "" {
			t, err := parseCreatedAt(b.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("parsing createdAt of record %d: %w", b.ID, err)
			}
			r.CreatedAt = t
		}
		records = append(records, r)
	}
	return records, nil
}

func (b blobRecord) missingFields() []string {
	var missing []string
	if b.Barcode == "" {
		missing = append(missing, "barcode")
	}
	if b.Date == "" {
		missing = append(missing, "date")
	}
	if b.Shift == "" {
		missing = append(missing, "shift")
	}
	return missing
}

func (s *BlobRecordStore) Save(_ context.Context, r *domain.WorkRecord) (int64, error) {
	records, err := s.load()
	if err != nil {
		return 0, storageErr("save", BackendBlob, err)
	}

	stampCreatedAt(r, s.clock)

	var maxID int64
	for _, existing := range records {
		if r.ID != 0 && existing.ID == r.ID {
			return 0, storageErr("save", BackendBlob, fmt.Errorf("%w: %d", ErrDuplicateID, r.ID))
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	assigned := r.ID == 0
	if assigned {
		r.ID = s.nextID(maxID)
	}

	stored := *r
	records = append(records, &stored)
	if err := s.store(records); err != nil {
		if assigned {
			r.ID = 0
		}
		return 0, storageErr("save", BackendBlob, err)
	}
	return r.ID, nil
}

func (s *BlobRecordStore) ListAll(_ context.Context) ([]*domain.WorkRecord, error) {
	records, err := s.load()
	if err != nil {
		return nil, storageErr("list", BackendBlob, err)
	}
	return records, nil
}

func (s *BlobRecordStore) Delete(_ context.Context, id int64) error {
	records, err := s.load()
	if err != nil {
		return storageErr("delete", BackendBlob, err)
	}
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	if err := s.store(kept); err != nil {
		return storageErr("delete", BackendBlob, err)
	}
	return nil
}

// nextID returns the creation time in milliseconds, or maxID+1 when the
// clock has not moved past the newest stored id.
func (s *BlobRecordStore) nextID(maxID int64) int64 {
	id := s.clock.Now().UnixMilli()
	if id <= maxID {
		id = maxID + 1
	}
	return id
}

func (s *BlobRecordStore) load() ([]*domain.WorkRecord, error) {
	blob, ok, err := s.kv.Get(BlobKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return DecodeBlob(blob)
}

func (s *BlobRecordStore) store(records []*domain.WorkRecord) error {
	blob, err := EncodeBlob(records)
	if err != nil {
		return err
	}
	return s.kv.Set(BlobKey, blob)
}
