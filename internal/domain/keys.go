package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyFirstName CtxKey = "FirstName"
	KeyLastName  CtxKey = "LastName"
)
