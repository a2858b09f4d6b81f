package db

import "context"

const createUser = `
INSERT INTO users (id, email, full_name)
VALUES (?, ?, ?)
`

type CreateUserParams struct {
	ID       string
	Email    string
	FullName string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser, arg.ID, arg.Email, arg.FullName)
	return err
}

const getUser = `
SELECT id, email, full_name, created_at
FROM users
WHERE id = ?
`

func (q *Queries) GetUser(ctx context.Context, id string) (User, error) {
	var u User
	err := q.db.QueryRowContext(ctx, getUser, id).
		Scan(&u.ID, &u.Email, &u.FullName, &u.CreatedAt)
	return u, err
}
