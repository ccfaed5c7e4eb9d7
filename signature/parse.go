package signature

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a signature from one of the forms
//
//	"Cl(p,n,z)"   "p,n,z"   "p,n"   "<preset>"
//
// optionally followed by "/<inner>" where inner is left, right,
// bidirectional or none.
func Parse(s string) (Signature, error) {
	s = strings.TrimSpace(s)
	body, inner, hasInner := strings.Cut(s, "/")

	var sig Signature
	if p, ok := Preset(body); ok {
		sig = p
	} else {
		counts, err := parseCounts(body)
		if err != nil {
			return Signature{}, err
		}
		sig = Signature{Positive: counts[0], Negative: counts[1], Zero: counts[2]}
	}

	if hasInner {
		ip, err := ParseInnerProduct(strings.TrimSpace(inner))
		if err != nil {
			return Signature{}, err
		}
		sig.Inner = ip
	}
	if err := sig.Validate(); err != nil {
		return Signature{}, err
	}
	return sig, nil
}

func parseCounts(s string) ([3]int, error) {
	var counts [3]int
	body := s
	if len(body) >= 3 && strings.EqualFold(body[:3], "cl(") {
		if !strings.HasSuffix(body, ")") {
			return counts, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidSignature, s)
		}
		body = body[3 : len(body)-1]
	}

	parts := strings.Split(body, ",")
	if len(parts) < 1 || len(parts) > 3 {
		return counts, fmt.Errorf("%w: expected p,n,z in %q", ErrInvalidSignature, s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return counts, fmt.Errorf("%w: %q: %w", ErrInvalidSignature, s, err)
		}
		counts[i] = v
	}
	return counts, nil
}
