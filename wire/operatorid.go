package wire

const operatorIdWindow = 20

// ParseOperator decodes an OperatorId payload: one type byte, then bytes
// read until the first NUL and filtered to the ASCII printable range
// (broader than BasicId's alphanumeric-only filter, per spec.md §4.1).
func ParseOperator(data []byte) (rest []byte, o Operator, err error) {
	if err := need(data, 1, "operator.type"); err != nil {
		return nil, Operator{}, err
	}

	o.OperatorIdType = data[0]

	idBytes := data[1:]
	window := idBytes
	if len(window) > operatorIdWindow {
		window = window[:operatorIdWindow]
	}

	nul := len(window)
	for i, c := range window {
		if c == 0 {
			nul = i
			break
		}
	}
	window = window[:nul]

	filtered := make([]byte, 0, len(window))
	for _, c := range window {
		if isASCIIPrintable(c) {
			filtered = append(filtered, c)
		}
	}
	o.OperatorId = string(filtered)

	consumed := 1
	if len(idBytes) < operatorIdWindow {
		consumed += len(idBytes)
	} else {
		consumed += operatorIdWindow
	}
	if consumed > len(data) {
		consumed = len(data)
	}
	return data[consumed:], o, nil
}
