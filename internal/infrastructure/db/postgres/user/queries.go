package user

const (
	userColumns = `id, email, password_hash, role, name, surname, patronymic, date_of_birth, status, is_blocked, created_at, updated_at`

	SelectUsersByRole = `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`
	CountUsersByRole = `SELECT count(*) FROM users WHERE role = $1`
	SelectUserByID   = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, role, name, surname, patronymic, date_of_birth, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns
	UpdateStatusByID = `
		UPDATE users
		SET status = $1,
		    updated_at = now()
		WHERE id = $2
	`
	BlockUserByID = `
		UPDATE users
		SET is_blocked = TRUE,
		    updated_at = now()
		WHERE id = $1
	`
)
