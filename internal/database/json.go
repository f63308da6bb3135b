package database

import (
	"encoding/json"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

// Status histories and key-benefit lists are stored as JSON text columns.

func marshalHistory(h models.StatusHistory) (string, error) {
	b, err := json.Marshal(h)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanHistory(raw string) (models.StatusHistory, error) {
	if raw == "" {
		return nil, nil
	}
	var h models.StatusHistory
	if err := json.Unmarshal([]byte(raw), &h); err != nil {
		return nil, err
	}
	return h, nil
}

func marshalStrings(s []string) (string, error) {
	if s == nil {
		s = []string{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func scanStrings(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var s []string
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return s, nil
}
