package queries

const (
	GetUserByID = `
		SELECT id, firstname, lastname, email, password, role
		FROM users
		WHERE id = $1
	`

	GetUserByEmail = `
		SELECT id, firstname, lastname, email, password, role
		FROM users
		WHERE email = $1
	`

	InsertUser = `
		INSERT INTO users (firstname, lastname, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	DeleteUser = `
		DELETE FROM users
		WHERE id = $1
	`
)
