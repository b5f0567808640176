package validation

import (
	"testing"
	"time"
)

type materialForm struct {
	MaterialType string `json:"material_type" validate:"required"`
	Brand        string `json:"brand" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Status       string `json:"status" validate:"required,enum=material_status"`
}

type userForm struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	UserType    string `json:"user_type" validate:"required,enum=user_type"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	PhoneNumber string `json:"phone_number" validate:"digits,min=10"`
}

type loanForm struct {
	UserID     string    `json:"user_id" validate:"required"`
	ReturnDate time.Time `json:"return_date" validate:"required,aftertomorrow"`
	LoanStatus string    `json:"loan_status" validate:"required,enum=loan_status"`
}

func TestStruct_ValidMaterial(t *testing.T) {
	form := materialForm{
		MaterialType: "Microscope",
		Brand:        "Zeiss",
		Model:        "Primo Star",
		Status:       "Available",
	}
	if fields := Struct(form); fields != nil {
		t.Fatalf("expected no errors, got %v", fields)
	}
}

func TestStruct_CollectsAllFieldErrors(t *testing.T) {
	// An empty form must report every failing field in a single pass.
	fields := Struct(materialForm{})
	if fields == nil {
		t.Fatalf("expected errors, got nil")
	}
	want := map[string]string{
		"material_type": "El tipo de material es obligatorio",
		"brand":         "La marca es obligatoria",
		"model":         "El modelo es obligatorio",
		"status":        "El estado es obligatorio",
	}
	for field, msg := range want {
		if got := fields[field]; got != msg {
			t.Errorf("field %s: got %q, want %q", field, got, msg)
		}
	}
	if len(fields) != len(want) {
		t.Errorf("got %d field errors, want %d: %v", len(fields), len(want), fields)
	}
}

func TestStruct_EnumMembership(t *testing.T) {
	cases := []struct {
		name   string
		status string
		valid  bool
	}{
		{"available", "Available", true},
		{"borrowed", "Borrowed", true},
		{"under maintenance", "UnderMaintenance", true},
		{"not available", "NotAvailable", true},
		{"unknown value", "Broken", false},
		{"wrong case", "available", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := materialForm{
				MaterialType: "Laptop",
				Brand:        "Dell",
				Model:        "XPS",
				Status:       tc.status,
			}
			fields := Struct(form)
			if tc.valid && fields != nil {
				t.Fatalf("expected valid, got %v", fields)
			}
			if !tc.valid {
				if fields == nil {
					t.Fatalf("expected status error, got none")
				}
				if fields["status"] != "Estado inválido" {
					t.Errorf("got %q, want %q", fields["status"], "Estado inválido")
				}
			}
		})
	}
}

func TestStruct_UserRules(t *testing.T) {
	valid := userForm{
		FirstName:   "Ana",
		LastName:    "García",
		UserType:    "Student",
		Email:       "ana@example.com",
		Password:    "secret1",
		PhoneNumber: "5512345678",
	}

	t.Run("valid", func(t *testing.T) {
		if fields := Struct(valid); fields != nil {
			t.Fatalf("expected no errors, got %v", fields)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		form := valid
		form.Email = "not-an-email"
		fields := Struct(form)
		if fields["email"] != "Correo inválido" {
			t.Errorf("got %q, want %q", fields["email"], "Correo inválido")
		}
	})

	t.Run("short password", func(t *testing.T) {
		form := valid
		form.Password = "abc"
		fields := Struct(form)
		if fields["password"] != "Mínimo 6 caracteres" {
			t.Errorf("got %q, want %q", fields["password"], "Mínimo 6 caracteres")
		}
	})

	t.Run("bad user type", func(t *testing.T) {
		form := valid
		form.UserType = "Janitor"
		fields := Struct(form)
		if fields["user_type"] != "Tipo de usuario inválido" {
			t.Errorf("got %q, want %q", fields["user_type"], "Tipo de usuario inválido")
		}
	})

	t.Run("phone with letters", func(t *testing.T) {
		form := valid
		form.PhoneNumber = "55abc45678"
		fields := Struct(form)
		if fields["phone_number"] != "Solo números" {
			t.Errorf("got %q, want %q", fields["phone_number"], "Solo números")
		}
	})

	t.Run("phone too short", func(t *testing.T) {
		form := valid
		form.PhoneNumber = "12345"
		fields := Struct(form)
		if fields["phone_number"] != "Mínimo 10 dígitos" {
			t.Errorf("got %q, want %q", fields["phone_number"], "Mínimo 10 dígitos")
		}
	})

	t.Run("empty phone", func(t *testing.T) {
		// The digit rule runs on the empty string too, so a blank
		// phone field is rejected rather than skipped.
		form := valid
		form.PhoneNumber = ""
		fields := Struct(form)
		if fields["phone_number"] != "Solo números" {
			t.Errorf("got %q, want %q", fields["phone_number"], "Solo números")
		}
	})
}

func TestStruct_ReturnDateBoundary(t *testing.T) {
	base := loanForm{UserID: "u1", LoanStatus: "Active"}

	cases := []struct {
		name   string
		offset time.Duration
		valid  bool
	}{
		{"past", -time.Hour, false},
		{"now", 0, false},
		{"exactly 24h ahead", 24 * time.Hour, false},
		{"just past 24h", 24*time.Hour + time.Minute, true},
		{"next week", 7 * 24 * time.Hour, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := base
			form.ReturnDate = time.Now().Add(tc.offset)
			fields := Struct(form)
			if tc.valid && fields != nil {
				t.Fatalf("expected valid, got %v", fields)
			}
			if !tc.valid {
				want := "La fecha de devolución no puede ser menor a mañana"
				if fields["return_date"] != want {
					t.Errorf("got %q, want %q", fields["return_date"], want)
				}
			}
		})
	}
}
