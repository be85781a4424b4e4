package wire

// ParseAuthentication and ParseSelfId capture their message bytes
// verbatim without decoding beyond the common header, per spec.md §1
// ("decoding authentication messages beyond capturing their raw bytes"
// is a non-goal) and §4.1 ("captured, not decoded"). Both always
// succeed: there is nothing left to validate once the header has
// dispatched here.

func ParseAuthentication(data []byte) (rest []byte, a Authentication) {
	a.Raw = append([]byte(nil), data...)
	return nil, a
}

func ParseSelfId(data []byte) (rest []byte, s SelfId) {
	s.Raw = append([]byte(nil), data...)
	return nil, s
}
