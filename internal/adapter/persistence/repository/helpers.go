package repository

import (
	"encoding/json"
	"strconv"
	"time"

	"nexus_recycle/internal/domain/entities"

	"github.com/rotisserie/eris"
)

// Record keys shared by every driver.
const (
	ProfileKey = "nexus_user"
	LedgerKey  = "nexus_txs"

	DefaultStateTable = "nexus_state"
)

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

// encodeProfile and the functions below give the SQL drivers one JSON shape
// for both records.
func encodeProfile(p entities.UserProfile) ([]byte, error) {
	b, err := json.Marshal(p)
	return b, eris.Wrap(err, "encode profile")
}

func decodeProfile(b []byte) (entities.UserProfile, error) {
	var p entities.UserProfile
	if len(b) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return entities.UserProfile{}, eris.Wrap(err, "decode profile")
	}
	return p, nil
}

func encodeLedger(ledger []entities.Transaction) ([]byte, error) {
	if ledger == nil {
		ledger = []entities.Transaction{}
	}
	b, err := json.Marshal(ledger)
	return b, eris.Wrap(err, "encode ledger")
}

func decodeLedger(b []byte) ([]entities.Transaction, error) {
	out := []entities.Transaction{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, eris.Wrap(err, "decode ledger")
	}
	if out == nil {
		out = []entities.Transaction{}
	}
	return out, nil
}
