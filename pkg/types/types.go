// Package types defines core types shared across the pulsebot packages.
package types

// Project is one promotable entry from the configured roster. Projects are
// immutable configuration data; the bot only indexes into the list via the
// rotation cursor.
type Project struct {
	Name     string `json:"name" yaml:"name"`
	Handle   string `json:"handle" yaml:"handle"`
	Website  string `json:"website" yaml:"website"`
	Category string `json:"category" yaml:"category"`
}

// Post is one item fetched from an account's profile. Transient: produced by
// the social client per fetch, consumed within one cycle. Only the ID may
// outlive the cycle, inside a ledger.
type Post struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"` // raw platform value; may be empty
	IsRepost  bool   `json:"is_repost"`
}
