package repoargs

type CreateCustomer struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}
