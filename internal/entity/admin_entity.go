package entity

// AdminAccount is an operator credential row from the system_admin table.
// Accounts are provisioned out of band and read-only from this system.
type AdminAccount struct {
	Username string
	Password string
}
