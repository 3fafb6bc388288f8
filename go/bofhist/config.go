package bofhist

import "github.com/pkg/errors"

// Config describes how codes are decoded.
type Config struct {
	// Range is the number of bins. Codes must be in [0, Range).
	Range int `json:"range"`
	// Pattern is the prefix which precedes the code. May be empty.
	Pattern string `json:"pattern"`
	// Column holds the codes in tabular input.
	Column string `json:"column,omitempty"`
	// ImageColumn holds the image identity in tabular input.
	ImageColumn string `json:"image_column,omitempty"`
}

func (cfg Config) Validate() error {
	if cfg.Range < 1 {
		return errors.Wrapf(ErrInvalidConfig, "range must be positive: %d", cfg.Range)
	}
	return nil
}
