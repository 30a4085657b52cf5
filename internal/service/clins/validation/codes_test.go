package validation

import "testing"

func TestDrugPriceCode(t *testing.T) {
	tests := []struct {
		code string
		ok   bool
	}{
		{"1124AB123C1", true},
		{"0000ZZ999Z9", true},
		{"112AB123C1", false},   // 3 leading digits
		{"11245B123C1", false},  // digit where letter expected
		{"1124AB123C12", false}, // too long
		{"1124ab123c1", false},  // lowercase
		{"", false},
	}
	for _, tt := range tests {
		ok, reason := DrugPriceCode(tt.code)
		if ok != tt.ok {
			t.Errorf("DrugPriceCode(%q) = %v, want %v", tt.code, ok, tt.ok)
		}
		if !ok && reason == "" {
			t.Errorf("DrugPriceCode(%q) rejected without a reason", tt.code)
		}
		if ok && reason != "" {
			t.Errorf("DrugPriceCode(%q) accepted with reason %q", tt.code, reason)
		}
	}
}

func TestDrugHotCode(t *testing.T) {
	tests := []struct {
		code string
		ok   bool
	}{
		{"123456789", true},
		{"000000000", true},
		{"12345678", false},
		{"1234567890", false},
		{"12345678A", false},
		{"", false},
	}
	for _, tt := range tests {
		if ok, _ := DrugHotCode(tt.code); ok != tt.ok {
			t.Errorf("DrugHotCode(%q) = %v, want %v", tt.code, ok, tt.ok)
		}
	}
}

func TestLabTestCode(t *testing.T) {
	tests := []struct {
		code string
		ok   bool
	}{
		{"3A015000002327101", true},
		{"00000000000000000", true},
		{"3A01500000232710", false},   // 16 chars
		{"3A0150000023271011", false}, // 18 chars
		{"3a015000002327101", false},  // lowercase
		{"", false},
	}
	for _, tt := range tests {
		if ok, _ := LabTestCode(tt.code); ok != tt.ok {
			t.Errorf("LabTestCode(%q) = %v, want %v", tt.code, ok, tt.ok)
		}
	}
}

func TestLicenseNumbers(t *testing.T) {
	if ok, _ := PhysicianLicense("123456"); !ok {
		t.Error("expected 6-digit physician license to be valid")
	}
	if ok, _ := PhysicianLicense("12345"); ok {
		t.Error("expected 5-digit physician license to be invalid")
	}
	if ok, _ := PhysicianLicense("1234567"); ok {
		t.Error("expected 7-digit physician license to be invalid")
	}

	if ok, _ := NurseLicense("12345678"); !ok {
		t.Error("expected 8-digit nurse license to be valid")
	}
	if ok, _ := NurseLicense("123456"); ok {
		t.Error("expected 6-digit nurse license to be invalid")
	}

	if ok, _ := PharmacistLicense("A123456"); !ok {
		t.Error("expected letter+6-digit pharmacist license to be valid")
	}
	if ok, _ := PharmacistLicense("1234567"); ok {
		t.Error("expected digit-only pharmacist license to be invalid")
	}
	if ok, _ := PharmacistLicense("AB23456"); ok {
		t.Error("expected two-letter pharmacist license to be invalid")
	}
}

func TestPostalCode(t *testing.T) {
	tests := []struct {
		code string
		ok   bool
	}{
		{"1000001", true},
		{"100000", false},
		{"10000011", false},
		{"100-0001", false},
		{"", false},
	}
	for _, tt := range tests {
		if ok, _ := PostalCode(tt.code); ok != tt.ok {
			t.Errorf("PostalCode(%q) = %v, want %v", tt.code, ok, tt.ok)
		}
	}
}

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		number string
		ok     bool
	}{
		{"09012345678", true},
		{"090-1234-5678", true},
		{"08012345678", true},
		{"07012345678", true},
		{"0901234567", false}, // mobile prefix but too short
		{"0312345678", true},  // Tokyo landline
		{"03-1234-5678", true},
		{"045123456", true},    // 9-digit landline
		{"1234567890", false},  // no leading zero
		{"03123456789", false}, // landline too long
		{"03 1234 5678", false},
		{"", false},
	}
	for _, tt := range tests {
		if ok, _ := PhoneNumber(tt.number); ok != tt.ok {
			t.Errorf("PhoneNumber(%q) = %v, want %v", tt.number, ok, tt.ok)
		}
	}
}

func TestValidatorsArePure(t *testing.T) {
	for i := 0; i < 3; i++ {
		if ok, _ := DrugPriceCode("1124AB123C1"); !ok {
			t.Fatal("verdict changed between calls")
		}
		if ok, _ := DrugPriceCode("112AB123C1"); ok {
			t.Fatal("verdict changed between calls")
		}
	}
}
