package value

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDiagnosis = errors.New("unknown diagnosis")

type Diagnosis string

const (
	Malignant Diagnosis = "malignant"
	Benign    Diagnosis = "benign"
)

// ParseDiagnosis accepts M/B, malignant/benign and 1/0, case-insensitive.
func ParseDiagnosis(s string) (Diagnosis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "malignant", "1":
		return Malignant, nil
	case "b", "benign", "0":
		return Benign, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownDiagnosis)
	}
}

func (d Diagnosis) String() string {
	return string(d)
}

// Label is the binary class used by the classifiers: malignant is positive.
func (d Diagnosis) Label() int {
	if d == Malignant {
		return 1
	}

	return 0
}

// Code is the single letter used in the dataset files.
func (d Diagnosis) Code() string {
	if d == Malignant {
		return "M"
	}

	return "B"
}
