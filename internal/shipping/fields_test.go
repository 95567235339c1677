package shipping

import (
	"strings"
	"testing"
)

func TestCheckFieldZIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value     string
		wantValid Validity
		wantZip   bool // true when the error should mention a valid ZIP, not a required field
	}{
		{"10001", ValidityValid, false},
		{"10001-1234", ValidityValid, false},
		{"ABCDE", ValidityInvalid, true},
		{"1000", ValidityInvalid, true},
		{"100011234", ValidityInvalid, true},
		{"", ValidityInvalid, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("zip "+tt.value, func(t *testing.T) {
			t.Parallel()
			st := CheckField(FieldPostalCode, tt.value)
			if !st.Touched {
				t.Error("checked field should be marked touched")
			}
			if st.Valid != tt.wantValid {
				t.Errorf("CheckField(postalCode, %q) valid = %v, want %v", tt.value, st.Valid, tt.wantValid)
			}
			if tt.wantValid == ValidityInvalid {
				if tt.wantZip && !strings.Contains(st.Error, "ZIP code (12345") {
					t.Errorf("expected a ZIP-format message, got %q", st.Error)
				}
				if !tt.wantZip && !strings.Contains(st.Error, "required") {
					t.Errorf("expected a required-field message, got %q", st.Error)
				}
			}
		})
	}
}

func TestCheckFieldName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     string
		wantValid Validity
		wantErr   string
	}{
		{"empty name", "", ValidityInvalid, "A name is needed for shipping"},
		{"single character", "A", ValidityInvalid, "Name must be at least 2 characters"},
		{"single multi-byte character", "É", ValidityInvalid, "Name must be at least 2 characters"},
		{"two characters", "Al", ValidityValid, ""},
		{"two multi-byte characters", "Éa", ValidityValid, ""},
		{"full name", "Ada Lovelace", ValidityValid, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			st := CheckField(FieldName, tt.value)
			if st.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", st.Valid, tt.wantValid)
			}
			if st.Error != tt.wantErr {
				t.Errorf("error = %q, want %q", st.Error, tt.wantErr)
			}
		})
	}
}

func TestCheckFieldStateIsEnumerated(t *testing.T) {
	t.Parallel()

	st := CheckField(FieldState, "")
	if st.Valid != ValidityInvalid || !strings.Contains(st.Error, "select a state") {
		t.Errorf("empty state should prompt a selection, got %+v", st)
	}
	if st := CheckField(FieldState, "NY"); st.Valid != ValidityValid {
		t.Errorf("chosen state should be valid, got %+v", st)
	}
}

// The field-name constants are wire names shared with the address form; the
// per-field feedback type lives alongside them under its own name, so both are
// usable in the same scope.
func TestFieldConstantsMatchWireNames(t *testing.T) {
	t.Parallel()

	got := []string{FieldName, FieldStreet1, FieldCity, FieldState, FieldPostalCode}
	want := []string{"name", "street1", "city", "state", "postalCode"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field constant %d = %q, want %q", i, got[i], want[i])
		}
	}

	var st FieldStatus = CheckField(FieldState, "NY")
	if !st.Touched || st.Valid != ValidityValid {
		t.Errorf("CheckField(FieldState, NY) = %+v, want touched and valid", st)
	}
}

func TestFieldStatesNeutralUntilTouched(t *testing.T) {
	t.Parallel()

	fs := NewFieldStates()
	for field, st := range fs {
		if st.Touched || st.Valid != ValidityUnknown || st.Error != "" {
			t.Errorf("field %q should start neutral, got %+v", field, st)
		}
	}

	fs.Blur(FieldCity, "")
	if st := fs[FieldCity]; !st.Touched || st.Valid != ValidityInvalid {
		t.Errorf("blurred empty city should be invalid, got %+v", st)
	}
	if st := fs[FieldName]; st.Touched {
		t.Errorf("untouched name should stay neutral, got %+v", st)
	}
}

func TestApplySuggestionValidatesImmediately(t *testing.T) {
	t.Parallel()

	fs := NewFieldStates()
	fs.ApplySuggestion(AddressSuggestion{
		Street1:    "1 Main St",
		City:       "New York",
		State:      "NY",
		PostalCode: "10001",
	})

	for _, field := range []string{FieldStreet1, FieldCity, FieldState, FieldPostalCode} {
		st := fs[field]
		if !st.Touched || st.Valid != ValidityValid {
			t.Errorf("autofilled field %q should be touched and valid, got %+v", field, st)
		}
	}

	// Name is not part of a suggestion and stays neutral.
	if st := fs[FieldName]; st.Touched {
		t.Errorf("name should stay neutral after autofill, got %+v", st)
	}
}

func TestApplySuggestionFlagsBadFill(t *testing.T) {
	t.Parallel()

	fs := NewFieldStates()
	fs.ApplySuggestion(AddressSuggestion{Street1: "1 Main St", City: "New York", State: "NY", PostalCode: "bad"})

	if st := fs[FieldPostalCode]; st.Valid != ValidityInvalid {
		t.Errorf("bad autofilled ZIP should be invalid immediately, got %+v", st)
	}
}
