package sdk

import "strings"

// Role is the canonical representation of a user's role in SISE.
//
// The API is the source of truth for the role vocabulary; unknown role
// strings survive normalization unchanged so that new server-side roles do
// not break older clients.
type Role string

// Canonical roles as spelled by the SISE backend.
const (
	RoleAdministrador Role = "Administrador"
	RoleDirector      Role = "Director"
	RoleDocente       Role = "Docente"
	RoleEstudiante    Role = "Estudiante"
	RoleAcudiente     Role = "Acudiente"
)

// roleTable maps lowercase server role tokens to their canonical spelling.
var roleTable = map[string]Role{
	"admin":         RoleAdministrador,
	"administrador": RoleAdministrador,
	"director":      RoleDirector,
	"profesor":      RoleDocente,
	"docente":       RoleDocente,
	"estudiante":    RoleEstudiante,
	"acudiente":     RoleAcudiente,
}

// NormalizeRole maps a server-supplied role string to its canonical form.
// Lookup is case-insensitive. An empty input falls back to Estudiante, and
// an unrecognized role is returned unchanged. The function is pure and
// idempotent: NormalizeRole(NormalizeRole(r)) == NormalizeRole(r).
func NormalizeRole(raw string) Role {
	if raw == "" {
		return RoleEstudiante
	}
	if canonical, ok := roleTable[strings.ToLower(raw)]; ok {
		return canonical
	}
	return Role(raw)
}

// Equal compares two roles ignoring case, matching how the API compares
// role names.
func (r Role) Equal(other Role) bool {
	return strings.EqualFold(string(r), string(other))
}

func (r Role) String() string {
	return string(r)
}
