package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a session of db that runs its statements on tx when tx is set. Services own the
// *sql.Tx; repositories only borrow it.
func Bind(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	session := db.Session(&gorm.Session{Context: ctx, NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
