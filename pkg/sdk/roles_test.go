package sdk

import "testing"

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		raw  string
		want Role
	}{
		{"admin", RoleAdministrador},
		{"ADMIN", RoleAdministrador},
		{"administrador", RoleAdministrador},
		{"director", RoleDirector},
		{"profesor", RoleDocente},
		{"Docente", RoleDocente},
		{"estudiante", RoleEstudiante},
		{"acudiente", RoleAcudiente},
		{"", RoleEstudiante},
		{"rector", Role("rector")}, // unknown roles pass through
	}
	for _, tt := range tests {
		if got := NormalizeRole(tt.raw); got != tt.want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeRoleIdempotent(t *testing.T) {
	inputs := []string{"admin", "ADMIN", "profesor", "Docente", "estudiante", "", "rector", "Administrador"}
	for _, raw := range inputs {
		once := NormalizeRole(raw)
		twice := NormalizeRole(string(once))
		if once != twice {
			t.Errorf("NormalizeRole not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestRoleEqualIgnoresCase(t *testing.T) {
	if !RoleDocente.Equal("docente") {
		t.Error("expected Docente == docente")
	}
	if RoleDocente.Equal(RoleEstudiante) {
		t.Error("expected Docente != Estudiante")
	}
}
