package logx

import (
	"fmt"
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: ).+?(\r)"),
	regexp.MustCompile("(?s)(Cookie: ).+?(\r)"),
}

// SensitiveDataMasker replaces credentials in dumped headers and the values of
// the configured JSON fields. Both string and numeric values are masked.
type SensitiveDataMasker struct {
	patterns []*regexp.Regexp
}

func NewSensitiveDataMasker(jsonFields ...string) SensitiveDataMasker {
	patterns := make([]*regexp.Regexp, 0, len(headerPatterns)+2*len(jsonFields))
	patterns = append(patterns, headerPatterns...)

	for _, field := range jsonFields {
		quoted := regexp.QuoteMeta(field)
		patterns = append(patterns,
			regexp.MustCompile(fmt.Sprintf(`(?s)("%s":\s?").+?(")`, quoted)),
			regexp.MustCompile(fmt.Sprintf(`("%s":\s?)-?[0-9][0-9.eE+-]*()`, quoted)),
		)
	}

	return SensitiveDataMasker{patterns: patterns}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range s.patterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
