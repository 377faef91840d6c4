package privacy

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/rollcall/pkg/domain/model/errs"
)

// Policy configures which comments are considered to disclose personal
// data about students.
type Policy struct {
	Keywords  []string
	MaxLength int
}

func DefaultPolicy() Policy {
	return Policy{
		Keywords: []string{
			// birth date and age
			"geboren", "geburtstag", "geb.", "jahre alt", "jährig",
			// address
			"adresse", "anschrift", "straße", "strasse", "str.", "wohnt",
			// phone
			"telefon", "tel.", "handy", "mobil",
			// mail
			"e-mail", "email", "@",
		},
		MaxLength: 500,
	}
}

var (
	// Two capitalized words in a row, e.g. "Anna Schmidt".
	namePattern = regexp.MustCompile(`(?:^|[^\p{L}])\p{Lu}\p{Ll}+\s+\p{Lu}\p{Ll}+`)
	// D.M.YY up to DD.MM.YYYY
	datePattern = regexp.MustCompile(`(?:^|\D)\d{1,2}\.\d{1,2}\.(?:\d{4}|\d{2})(?:\D|$)`)
)

type Checker struct {
	keywords  []string
	maxLength int
}

func New(policy Policy) *Checker {
	keywords := make([]string, 0, len(policy.Keywords))
	for _, k := range policy.Keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	maxLength := policy.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultPolicy().MaxLength
	}
	return &Checker{keywords: keywords, maxLength: maxLength}
}

// Check validates a comment. When acknowledged is true the caller has
// confirmed the privacy warning and only the length cap applies.
func (c *Checker) Check(comment string, acknowledged bool) error {
	if n := utf8.RuneCountInString(comment); n > c.maxLength {
		return goerr.New("comment is too long",
			goerr.V("length", n),
			goerr.V("max_length", c.maxLength),
			goerr.T(errs.TagCommentTooLong))
	}
	if acknowledged {
		return nil
	}

	if namePattern.MatchString(comment) {
		return goerr.New("comment may contain a person's name", goerr.T(errs.TagPrivacyName))
	}
	if datePattern.MatchString(comment) {
		return goerr.New("comment may contain a birth date", goerr.T(errs.TagPrivacyDate))
	}

	lower := strings.ToLower(comment)
	for _, k := range c.keywords {
		if strings.Contains(lower, k) {
			// keyword is logged, never the comment
			return goerr.New("comment contains a personal data keyword",
				goerr.V("keyword", k),
				goerr.T(errs.TagPrivacyKeyword))
		}
	}
	return nil
}
