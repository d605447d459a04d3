package entity

// Payment describes a course purchase reported by a student. It is never persisted.
type Payment struct {
	StudentName   string
	StudentEmail  string
	Course        string
	Price         string
	Method        string
	TransactionID string
}
