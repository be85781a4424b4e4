package wire

import "testing"

func TestParseOperator_KeepsPunctuation(t *testing.T) {
	data := append([]byte{0x01}, []byte("FAA-REG/12345")...)
	data = append(data, 0x00)

	_, o, err := ParseOperator(data)
	if err != nil {
		t.Fatalf("ParseOperator() error = %v", err)
	}
	if o.OperatorIdType != 1 {
		t.Errorf("OperatorIdType = %d, want 1", o.OperatorIdType)
	}
	if o.OperatorId != "FAA-REG/12345" {
		t.Errorf("OperatorId = %q, want %q (printable filter keeps punctuation)", o.OperatorId, "FAA-REG/12345")
	}
}

func TestParseOperator_Truncated(t *testing.T) {
	_, _, err := ParseOperator(nil)
	if err == nil {
		t.Fatal("expected truncation error for empty input")
	}
}
