package validation

import "testing"

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"valid", "Acme Corp", false},
		{"valid with surrounding spaces", "  Acme  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired("name", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && err.Field != "name" {
				t.Errorf("expected field %q, got %q", "name", err.Field)
			}
		})
	}
}

func TestValidateEnum(t *testing.T) {
	allowed := []string{"Low", "Medium", "High"}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid member", "Medium", false},
		{"empty passes", "", false},
		{"unknown value", "Urgent", true},
		{"case sensitive", "medium", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEnum("priority", tt.value, allowed)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEnum(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestValidateNonNegative(t *testing.T) {
	if err := ValidateNonNegative("value", 0); err != nil {
		t.Errorf("zero should pass, got %v", err)
	}
	if err := ValidateNonNegative("value", 100.5); err != nil {
		t.Errorf("positive should pass, got %v", err)
	}
	if err := ValidateNonNegative("value", -0.01); err == nil {
		t.Error("negative should fail")
	}
}

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("amount", 0); err == nil {
		t.Error("zero should fail")
	}
	if err := ValidatePositive("amount", -5); err == nil {
		t.Error("negative should fail")
	}
	if err := ValidatePositive("amount", 0.01); err != nil {
		t.Errorf("positive should pass, got %v", err)
	}
}

func TestValidateRange(t *testing.T) {
	if err := ValidateRange("progress", 50, 0, 100); err != nil {
		t.Errorf("in-range should pass, got %v", err)
	}
	if err := ValidateRange("progress", 0, 0, 100); err != nil {
		t.Errorf("lower bound should pass, got %v", err)
	}
	if err := ValidateRange("progress", 100, 0, 100); err != nil {
		t.Errorf("upper bound should pass, got %v", err)
	}
	if err := ValidateRange("progress", 101, 0, 100); err == nil {
		t.Error("above range should fail")
	}
}

func TestCollector(t *testing.T) {
	var c Collector

	if c.HasErrors() {
		t.Error("new collector should have no errors")
	}

	c.Add(nil)
	if c.HasErrors() {
		t.Error("adding nil should not record an error")
	}

	c.Add(ValidateRequired("name", ""))
	c.Add(ValidatePositive("amount", -1))

	if !c.HasErrors() {
		t.Fatal("expected errors")
	}
	if got := len(c.Errors()); got != 2 {
		t.Errorf("expected 2 errors, got %d", got)
	}
	if c.Errors()[0].Field != "name" {
		t.Errorf("expected first error on field name, got %q", c.Errors()[0].Field)
	}
}
