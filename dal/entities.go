package dal

import (
	"database/sql"
)

// ConsentRecord is one row of a bot's consent table: one follower, and where
// they stand in the opt-in workflow. Both timestamps are null until the
// corresponding step has happened.
type ConsentRecord struct {
	Did         string       // did:plc:e4elvkxhyyubjcl2zrl4cbht
	DmSent      sql.NullTime // when the consent question was DMed
	ConsentDate sql.NullTime // when the follower answered with the expected text
}
