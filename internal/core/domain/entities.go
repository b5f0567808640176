package domain

// Option represents a selectable value with its display label.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionSet is a named, fixed set of options for one enumerated field.
// The option tables below are the single source of truth for every
// enumerated field: dropdown population and validation both read them,
// so the two can never diverge.
type OptionSet []Option

// Contains reports whether value is a member of the set.
func (s OptionSet) Contains(value string) bool {
	for _, opt := range s {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// Values returns the raw option values.
func (s OptionSet) Values() []string {
	values := make([]string, len(s))
	for i, opt := range s {
		values[i] = opt.Value
	}
	return values
}

// Material statuses
const (
	MaterialAvailable        = "Available"
	MaterialBorrowed         = "Borrowed"
	MaterialUnderMaintenance = "UnderMaintenance"
	MaterialNotAvailable     = "NotAvailable"
)

// User statuses
const (
	UserActive    = "Active"
	UserInactive  = "Inactive"
	UserBlocked   = "Blocked"
	UserSuspended = "Suspended"
)

// Loan statuses
const (
	LoanActive   = "Active"
	LoanReturned = "Returned"
	LoanOverdue  = "Overdue"
)

// MaterialStatusOptions lists the valid material statuses.
var MaterialStatusOptions = OptionSet{
	{Value: MaterialAvailable, Label: "Disponible"},
	{Value: MaterialBorrowed, Label: "Prestado"},
	{Value: MaterialUnderMaintenance, Label: "En mantenimiento"},
	{Value: MaterialNotAvailable, Label: "No disponible"},
}

// UserStatusOptions lists the valid user statuses.
var UserStatusOptions = OptionSet{
	{Value: UserActive, Label: "Activo"},
	{Value: UserInactive, Label: "Inactivo"},
	{Value: UserBlocked, Label: "Bloqueado"},
	{Value: UserSuspended, Label: "Suspendido"},
}

// UserTypeOptions lists the valid user types.
var UserTypeOptions = OptionSet{
	{Value: "Student", Label: "Estudiante"},
	{Value: "Teacher", Label: "Profesor"},
	{Value: "Secretary", Label: "Secretario"},
	{Value: "LabTechnician", Label: "Técnico de Laboratorio"},
	{Value: "Executive", Label: "Ejecutivo"},
	{Value: "Administrative", Label: "Administrativo"},
}

// LoanStatusOptions lists the valid loan statuses.
var LoanStatusOptions = OptionSet{
	{Value: LoanActive, Label: "Activo"},
	{Value: LoanReturned, Label: "Devuelto"},
	{Value: LoanOverdue, Label: "Vencido"},
}

// OptionSets maps a set name (as used in `validate:"enum=..."` tags)
// to its option table.
var OptionSets = map[string]OptionSet{
	"material_status": MaterialStatusOptions,
	"user_status":     UserStatusOptions,
	"user_type":       UserTypeOptions,
	"loan_status":     LoanStatusOptions,
}
